package core

import (
	"Padel/logger"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const CountdownInterval = time.Second
const FlashDuration = 100 * time.Millisecond

// Cancel stops a scheduled callback. Calling it more than once is harmless.
type Cancel func()

// Scheduler is provided by the host. Callbacks must all run on one goroutine.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) Cancel
	Every(d time.Duration, fn func()) Cancel
	After(d time.Duration, fn func()) Cancel
}

type BestScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

type Renderer interface {
	Render(snap Snapshot)
}

// Game is the round state machine. It owns the state, decides when the
// physics runs and holds every pending callback so a reset can cancel them.
type Game struct {
	state     State
	scheduler Scheduler
	store     BestScoreStore
	renderer  Renderer

	frame     Cancel
	countdown Cancel
	flash     Cancel
	lastFrame time.Time

	// size reported while the arena was frozen, applied on the next reset
	pending *Arena
}

func NewGame(arena Arena, scheduler Scheduler, store BestScoreStore, renderer Renderer) *Game {
	g := &Game{
		scheduler: scheduler,
		store:     store,
		renderer:  renderer,
	}

	best, err := store.Load()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.BestScoreLoadFailMsg, err))
	}
	if best < 0 {
		best = 0
	}

	g.state.Arena = arena
	g.state.Round.BestScore = best
	g.state.Place()
	g.state.Phase = PhaseIdle

	logger.Log.Info(fmt.Sprintf(logger.GameReadyMsg, arena.Width, arena.Height, best))
	return g
}

func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Start begins the countdown of a new round. It does nothing while a round
// is already counting down or running.
func (g *Game) Start() {
	if g.state.Phase.Active() {
		logger.Log.Debug(fmt.Sprintf(logger.StartIgnoredMsg, g.state.Phase))
		return
	}

	g.Reset()

	g.state.Phase = PhaseCountdown
	g.state.Countdown = CountdownStart
	g.state.RoundID = uuid.New()

	id := g.state.RoundID
	g.countdown = g.scheduler.Every(CountdownInterval, func() {
		g.onCountdown(id)
	})

	logger.Log.Info(fmt.Sprintf(logger.RoundStartMsg, id))
	g.render()
}

// Reset cancels everything pending and returns to Idle with ball and paddle
// placed for the current arena.
func (g *Game) Reset() {
	g.stopFrame()
	g.stopCountdown()
	g.stopFlash()

	if g.pending != nil {
		g.state.Arena = *g.pending
		g.pending = nil
	}

	g.state.Place()
	g.state.Phase = PhaseIdle
	g.state.RoundID = uuid.Nil
	g.lastFrame = time.Time{}

	g.render()
}

// Resize changes the arena while Idle. During a round the size is kept
// aside until the next reset and false is returned.
func (g *Game) Resize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	if g.state.Phase != PhaseIdle {
		g.pending = &Arena{Width: width, Height: height}
		logger.Log.Debug(fmt.Sprintf(logger.ResizeDeferredMsg, width, height, g.state.Phase))
		return false
	}

	g.state.Arena = Arena{Width: width, Height: height}
	g.state.Place()
	g.render()
	return true
}

// MovePaddle centers the paddle on x, kept inside the arena. Input is only
// honored during Countdown and Running.
func (g *Game) MovePaddle(centerX float64) {
	if !g.state.Phase.Active() {
		return
	}

	paddle := &g.state.Paddle
	paddle.X = clamp(centerX-paddle.Width/2, 0, g.state.Arena.Width-paddle.Width)

	if g.state.Phase == PhaseCountdown {
		g.render()
	}
}

func (g *Game) NudgePaddle(dx float64) {
	paddle := &g.state.Paddle
	g.MovePaddle(paddle.X + paddle.Width/2 + dx)
}

func (g *Game) onCountdown(id uuid.UUID) {
	if id != g.state.RoundID {
		return
	}

	if !TickCountdown(&g.state) {
		g.render()
		return
	}

	// the zero stays up until the first frame draws over it
	zero := g.state.Snapshot()
	zero.Phase = PhaseCountdown
	g.renderSnapshot(zero)

	g.stopCountdown()
	g.lastFrame = time.Time{}
	g.requestFrame()
	logger.Log.Debug(fmt.Sprintf(logger.RoundRunningMsg, id))
}

func (g *Game) requestFrame() {
	id := g.state.RoundID
	g.frame = g.scheduler.RequestFrame(func(now time.Time) {
		g.onFrame(id, now)
	})
}

func (g *Game) onFrame(id uuid.UUID, now time.Time) {
	if id != g.state.RoundID || g.state.Phase != PhaseRunning {
		return
	}
	g.frame = nil

	var elapsed float64
	if !g.lastFrame.IsZero() {
		elapsed = FrameUnits(now.Sub(g.lastFrame))
	}
	g.lastFrame = now

	out := TickPhysics(&g.state, elapsed)

	if out.LeveledUp {
		logger.Log.Info(fmt.Sprintf(logger.LevelUpMsg, id, g.state.Round.Level))
		g.startFlash()
	}

	if out.NewBest {
		g.saveBest()
	}

	if out.Missed {
		g.stopFrame()
		logger.Log.Info(fmt.Sprintf(logger.RoundOverMsg, id, g.state.Round.Score, g.state.Round.Bounces, g.state.Round.Level))
		g.render()
		return
	}

	g.render()
	g.requestFrame()
}

func (g *Game) saveBest() {
	best := g.state.Round.BestScore
	if err := g.store.Save(best); err != nil {
		logger.Log.Error(fmt.Sprintf(logger.BestScoreSaveFailMsg, best, err))
	}
}

// startFlash paints the ball in the level-up color and schedules the revert.
// A reset cancels the revert; the round id check drops one that already fired.
func (g *Game) startFlash() {
	g.stopFlash()
	g.state.Ball.Color = ColorLevelUp

	id := g.state.RoundID
	g.flash = g.scheduler.After(FlashDuration, func() {
		if id != g.state.RoundID {
			return
		}
		g.flash = nil
		g.state.Ball.Color = ColorNormal
		g.render()
	})
}

func (g *Game) stopFrame() {
	if g.frame != nil {
		g.frame()
		g.frame = nil
	}
}

func (g *Game) stopCountdown() {
	if g.countdown != nil {
		g.countdown()
		g.countdown = nil
	}
}

func (g *Game) stopFlash() {
	if g.flash != nil {
		g.flash()
		g.flash = nil
	}
}

func (g *Game) render() {
	g.renderSnapshot(g.state.Snapshot())
}

func (g *Game) renderSnapshot(snap Snapshot) {
	if g.renderer != nil {
		g.renderer.Render(snap)
	}
}
