package scheduler

import (
	"Padel/core"
	"context"
	"time"
)

const taskBuffer = 64

// Loop runs every task on the goroutine that called Run. Timers fire on
// their own goroutines and only post tasks, so game state is never touched
// concurrently.
//
// RequestFrame, Every, After and the returned Cancel functions must be
// called from inside a task (or before Run starts).
type Loop struct {
	tasks         chan func()
	done          chan struct{}
	frameInterval time.Duration
	now           func() time.Time
}

type handle struct {
	cancelled bool
	stop      func()
}

func (h *handle) cancel() {
	if h.cancelled {
		return
	}
	h.cancelled = true
	if h.stop != nil {
		h.stop()
	}
}

func NewLoop(frameInterval time.Duration) *Loop {
	return &Loop{
		tasks:         make(chan func(), taskBuffer),
		done:          make(chan struct{}),
		frameInterval: frameInterval,
		now:           time.Now,
	}
}

// Post queues fn for the loop goroutine. It is safe from any goroutine and
// drops fn once the loop has stopped.
func (l *Loop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Run executes tasks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// RequestFrame calls fn once, one frame interval from now, with the time
// the frame was delivered.
func (l *Loop) RequestFrame(fn func(now time.Time)) core.Cancel {
	return l.once(l.frameInterval, func() {
		fn(l.now())
	})
}

func (l *Loop) After(d time.Duration, fn func()) core.Cancel {
	return l.once(d, fn)
}

func (l *Loop) Every(d time.Duration, fn func()) core.Cancel {
	h := &handle{}
	ticker := time.NewTicker(d)
	stop := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				l.Post(func() {
					if !h.cancelled {
						fn()
					}
				})
			case <-stop:
				return
			case <-l.done:
				ticker.Stop()
				return
			}
		}
	}()

	h.stop = func() {
		ticker.Stop()
		close(stop)
	}
	return h.cancel
}

func (l *Loop) once(d time.Duration, fn func()) core.Cancel {
	h := &handle{}
	timer := time.AfterFunc(d, func() {
		l.Post(func() {
			if h.cancelled {
				return
			}
			h.cancelled = true
			fn()
		})
	})

	h.stop = func() {
		timer.Stop()
	}
	return h.cancel
}
