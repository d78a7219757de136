package main

import (
	"Padel/config"
	"Padel/core"
	"Padel/store"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell"
)

// idleScheduler never fires; these tests only drive input.
type idleScheduler struct {
	requests int
}

func (s *idleScheduler) RequestFrame(fn func(now time.Time)) core.Cancel {
	s.requests++
	return func() {}
}

func (s *idleScheduler) Every(d time.Duration, fn func()) core.Cancel {
	s.requests++
	return func() {}
}

func (s *idleScheduler) After(d time.Duration, fn func()) core.Cancel {
	s.requests++
	return func() {}
}

var testProps = config.Properties{
	FrameInterval: 16 * time.Millisecond,
	CellWidth:     8,
	MaxArenaWidth: 600,
	ArenaMargin:   40,
}

func newTestTerminal(t *testing.T, cols, rows int) (*terminal, *bool) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	quit := false
	term := newTerminal(screen, &idleScheduler{}, &store.Memory{}, testProps, func() { quit = true })
	return term, &quit
}

func TestArenaForScreen(t *testing.T) {
	tests := []struct {
		name  string
		cols  int
		wantW float64
		wantH float64
	}{
		{name: "wide terminal caps at max", cols: 200, wantW: 600, wantH: 400},
		{name: "exact fit", cols: 80, wantW: 600, wantH: 400},
		{name: "narrow", cols: 50, wantW: 360, wantH: 240},
		{name: "tiny keeps a paddle", cols: 5, wantW: 80, wantH: 80.0 * NominalHeight / NominalWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := arenaForScreen(tt.cols, testProps)
			if arena.Width != tt.wantW || arena.Height != tt.wantH {
				t.Fatalf("expected %vx%v, got %vx%v", tt.wantW, tt.wantH, arena.Width, arena.Height)
			}
		})
	}
}

func TestKeysDriveTheGame(t *testing.T) {
	term, quit := newTestTerminal(t, 80, 25)

	term.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if term.game.Phase() != core.PhaseCountdown {
		t.Fatalf("expected Countdown after Enter, got %s", term.game.Phase())
	}

	before := term.game.Snapshot().Paddle.X
	term.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if got := term.game.Snapshot().Paddle.X; got != before+core.PaddleNudge {
		t.Fatalf("expected paddle at %v, got %v", before+core.PaddleNudge, got)
	}
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if got := term.game.Snapshot().Paddle.X; got != before {
		t.Fatalf("expected paddle back at %v, got %v", before, got)
	}

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if term.game.Phase() != core.PhaseIdle {
		t.Fatalf("expected Idle after r, got %s", term.game.Phase())
	}

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !*quit {
		t.Fatal("expected q to quit")
	}
}

func TestMouseMovesPaddle(t *testing.T) {
	term, _ := newTestTerminal(t, 80, 25)
	term.game.Start()

	// column 10 of 80 over a 600 wide arena is x 78.75
	term.handleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))

	if got := term.game.Snapshot().Paddle.X; math.Abs(got-28.75) > 1e-9 {
		t.Fatalf("expected paddle x 28.75, got %v", got)
	}
}

func TestResizeOnlyWhileIdle(t *testing.T) {
	term, _ := newTestTerminal(t, 80, 25)
	screen := term.screen.(tcell.SimulationScreen)

	screen.SetSize(50, 25)
	term.handleEvent(tcell.NewEventResize(50, 25))
	if got := term.game.Snapshot().Arena.Width; got != 360 {
		t.Fatalf("expected arena width 360, got %v", got)
	}

	term.game.Start()
	screen.SetSize(80, 25)
	term.handleEvent(tcell.NewEventResize(80, 25))
	if got := term.game.Snapshot().Arena.Width; got != 360 {
		t.Fatalf("expected arena frozen at 360, got %v", got)
	}

	term.game.Reset()
	if got := term.game.Snapshot().Arena.Width; got != 600 {
		t.Fatalf("expected deferred width 600 after reset, got %v", got)
	}
}

func TestBestScoreStoreSelection(t *testing.T) {
	if _, ok := bestScoreStore(config.Properties{}).(*store.Memory); !ok {
		t.Fatal("expected memory store without a file")
	}

	props := config.Properties{BestScoreFile: "best.properties"}
	if _, ok := bestScoreStore(props).(*store.PropertiesStore); !ok {
		t.Fatal("expected properties store with a file")
	}
}
