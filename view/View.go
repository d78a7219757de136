package view

import (
	"Padel/core"
	"fmt"
	"math"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2500    // 中線符號

const hudRows = 1
const netDash = 5    // 虛線長度
const netPeriod = 20 // 虛線週期

var (
	ballStyle      = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xa3e635))
	levelUpStyle   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xfbbf24))
	paddleStyle    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x7c3aed))
	paddleTopStyle = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x8b5cf6))
	netStyle       = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x4a5568))
	textStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View draws snapshots on a tcell screen. The arena is stretched over every
// row below the HUD line.
type View struct {
	screen tcell.Screen
	arena  core.Arena
}

func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// ArenaX converts a screen column into an arena x coordinate, using the
// arena of the last rendered snapshot.
func (v *View) ArenaX(col int) float64 {
	scaleX, _ := v.scale(v.arena)
	if scaleX == 0 {
		return 0
	}
	return (float64(col) + 0.5) / scaleX
}

func (v *View) scale(arena core.Arena) (float64, float64) {
	if arena.Width <= 0 || arena.Height <= 0 {
		return 0, 0
	}
	cols, rows := v.screen.Size()
	rows -= hudRows
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return float64(cols) / arena.Width, float64(rows) / arena.Height
}

func (v *View) Render(snap core.Snapshot) {
	v.arena = snap.Arena
	v.screen.Clear()

	scaleX, scaleY := v.scale(snap.Arena)
	if scaleX > 0 {
		v.drawNet(snap, scaleX, scaleY)
		v.drawBall(snap, scaleX, scaleY)
		v.drawPaddle(snap, scaleX, scaleY)
	}

	v.drawHud(snap)

	switch snap.Phase {
	case core.PhaseIdle:
		v.drawHint("Enter: start  r: reset  q: quit")
	case core.PhaseCountdown:
		v.drawCountdown(snap)
	case core.PhaseEnded:
		v.drawGameOver(snap)
	case core.PhaseRunning:
	}

	v.screen.Show()
}

func (v *View) drawNet(snap core.Snapshot, scaleX, scaleY float64) {
	cols, _ := v.screen.Size()
	row := toCell(snap.Arena.Height/2, scaleY) + hudRows
	for c := 0; c < cols; c++ {
		x := int(float64(c) / scaleX)
		if x%netPeriod < netDash {
			v.screen.SetContent(c, row, NetSymbol, nil, netStyle)
		}
	}
}

func (v *View) drawBall(snap core.Snapshot, scaleX, scaleY float64) {
	style := ballStyle
	if snap.Ball.Color == core.ColorLevelUp {
		style = levelUpStyle
	}
	col := toCell(snap.Ball.X, scaleX)
	row := toCell(snap.Ball.Y, scaleY) + hudRows
	v.screen.SetContent(col, row, BallSymbol, nil, style)
}

func (v *View) drawPaddle(snap core.Snapshot, scaleX, scaleY float64) {
	p := snap.Paddle
	col := toCell(p.X, scaleX)
	width := int(math.Max(1, math.Round(p.Width*scaleX)))
	row := toCell(p.Y, scaleY) + hudRows
	height := int(math.Max(1, math.Round(p.Height*scaleY)))

	Print(v.screen, row, col, width, 1, PaddleSymbol, paddleTopStyle)
	Print(v.screen, row+1, col, width, height-1, PaddleSymbol, paddleStyle)
}

func (v *View) drawHud(snap core.Snapshot) {
	hud := fmt.Sprintf("Score: %d  Level: %d  Bounces: %d  Best: %d", snap.Score, snap.Level, snap.Bounces, snap.BestScore)
	drawText(v.screen, 1, 0, hud, textStyle)
}

func (v *View) drawHint(hint string) {
	cols, rows := v.screen.Size()
	drawText(v.screen, (cols-len([]rune(hint)))/2, rows-1, hint, textStyle)
}

func (v *View) drawCountdown(snap core.Snapshot) {
	cols, rows := v.screen.Size()
	mid := rows / 2
	drawLetters(v.screen, cols/2, mid-glyphHeight/2-1, fmt.Sprint(snap.Countdown), textStyle)
	drawCentered(v.screen, cols, mid+glyphHeight/2+1, "Get ready!")
}

func (v *View) drawGameOver(snap core.Snapshot) {
	cols, rows := v.screen.Size()
	mid := rows / 2
	drawCentered(v.screen, cols, mid-1, "Game Over!")
	drawCentered(v.screen, cols, mid+1, fmt.Sprintf("Final Score: %d", snap.Score))
}

func toCell(v, scale float64) int {
	return int(math.Floor(v * scale))
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func drawCentered(screen tcell.Screen, cols, y int, text string) {
	drawText(screen, (cols-len([]rune(text)))/2, y, text, textStyle)
}

// drawLetters draws word in the big digit font, centered on x.
func drawLetters(screen tcell.Screen, x, y int, word string, style tcell.Style) {
	letters := []rune(word)
	totalLen := len(letters)*(glyphWidth+1) - 1
	startX := x - totalLen/2

	for i, letter := range letters {
		offsetX := startX + i*(glyphWidth+1)
		for _, cell := range GetCellsFromChar(letter) {
			screen.SetContent(offsetX+cell[0], y+cell[1], BallSymbol, nil, style)
		}
	}
}
