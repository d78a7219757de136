package main

import (
	"Padel/config"
	"Padel/core"
	"Padel/logger"
	"Padel/scheduler"
	"Padel/store"
	"Padel/view"
	"context"
	"fmt"
	"math"
	"os"

	"github.com/gdamore/tcell"
)

const NominalWidth = 600  // 標準球場寬
const NominalHeight = 400 // 標準球場高

type terminal struct {
	screen tcell.Screen
	view   *view.View
	game   *core.Game
	props  config.Properties
	quit   context.CancelFunc
}

func initScreen() tcell.Screen {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if e := screen.Init(); e != nil {
		logger.Log.Error(fmt.Sprintf(logger.ScreenInitFailMsg, e))
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.EnableMouse()
	return screen
}

// arenaForScreen sizes the arena to the terminal width, never wider than
// MaxArenaWidth, keeping the 3:2 aspect.
func arenaForScreen(cols int, props config.Properties) core.Arena {
	width := math.Min(props.MaxArenaWidth, float64(cols)*props.CellWidth-props.ArenaMargin)
	width = math.Max(width, core.PaddleMinWidth)
	return core.Arena{Width: width, Height: width * NominalHeight / NominalWidth}
}

func newTerminal(screen tcell.Screen, sched core.Scheduler, bestScores core.BestScoreStore, props config.Properties, quit context.CancelFunc) *terminal {
	t := &terminal{
		screen: screen,
		view:   view.New(screen),
		props:  props,
		quit:   quit,
	}

	cols, _ := screen.Size()
	t.game = core.NewGame(arenaForScreen(cols, props), sched, bestScores, t.view)
	t.game.Reset()
	return t
}

// initUserInput forwards screen events into the loop so they are handled on
// the same goroutine as the game ticks.
func (t *terminal) initUserInput(loop *scheduler.Loop) {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			loop.Post(func() {
				t.handleEvent(ev)
			})
		}
	}()
}

func (t *terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		cols, _ := ev.Size()
		arena := arenaForScreen(cols, t.props)
		if !t.game.Resize(arena.Width, arena.Height) {
			t.view.Render(t.game.Snapshot())
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		t.game.MovePaddle(t.view.ArenaX(x))

	case *tcell.EventKey:
		t.userOperationHandle(ev)
	}
}

func (t *terminal) userOperationHandle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		t.game.Start()

	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.exit()

	case tcell.KeyLeft:
		t.game.NudgePaddle(-core.PaddleNudge)

	case tcell.KeyRight:
		t.game.NudgePaddle(core.PaddleNudge)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			t.game.Start()
		case 'r':
			t.game.Reset()
		case 'q':
			t.exit()
		case 'a':
			t.game.NudgePaddle(-core.PaddleNudge)
		case 'd':
			t.game.NudgePaddle(core.PaddleNudge)
		}
	}
}

func (t *terminal) exit() {
	t.game.Reset()
	logger.Log.Info(logger.QuitMsg)
	t.quit()
}

// bestScoreStore keeps the best score in memory when no file is configured.
func bestScoreStore(props config.Properties) core.BestScoreStore {
	if props.BestScoreFile == "" {
		return &store.Memory{}
	}
	return store.NewPropertiesStore(props.BestScoreFile)
}

func start(props config.Properties) {
	screen := initScreen()
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := scheduler.NewLoop(props.FrameInterval)

	t := newTerminal(screen, loop, bestScoreStore(props), props, cancel)
	t.initUserInput(loop)

	_ = loop.Run(ctx)
}
