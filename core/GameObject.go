package core

import "github.com/google/uuid"

const BallRadius = 10       // 球半徑
const PaddleHeight = 15     // 球拍高度
const PaddleMinWidth = 80   // 球拍最小寬度
const PaddleTopOffset = 30  // 球拍頂端距離底部
const PaddleBandOffset = 15 // 球拍底端距離底部
const PaddleNudge = 8       // 鍵盤每次移動距離

const InitialLevel = 1
const CountdownStart = 3

type ColorTag int

const (
	ColorNormal ColorTag = iota
	ColorLevelUp
)

func (c ColorTag) String() string {
	switch c {
	case ColorLevelUp:
		return "LevelUp"
	default:
		return "Normal"
	}
}

type Arena struct {
	Width, Height float64
}

type Ball struct {
	X, Y           float64
	Radius         float64
	SpeedX, SpeedY float64
	Color          ColorTag
}

type Paddle struct {
	X             float64
	Width, Height float64
}

type Round struct {
	Score     int
	BestScore int
	Bounces   int
	Level     int
}

// State is everything one round needs. Only the Round State Machine and the
// Physics Engine mutate it; renderers get a Snapshot.
type State struct {
	Arena     Arena
	Ball      Ball
	Paddle    Paddle
	Round     Round
	Phase     Phase
	Countdown int
	RoundID   uuid.UUID
}

// Top is the y coordinate of the paddle's upper face.
func (p *Paddle) Top(arena Arena) float64 {
	return arena.Height - PaddleTopOffset
}

func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// BaseSpeed is the level-one ball speed for an arena of the given width.
func BaseSpeed(arena Arena) float64 {
	return max(2, (arena.Width/600)*2.5)
}

func PaddleWidth(arena Arena) float64 {
	return max(PaddleMinWidth, arena.Width/6)
}

// Place recenters ball and paddle for the current arena, restores the
// level-one speeds and clears the round counters. BestScore is kept.
func (s *State) Place() {
	base := BaseSpeed(s.Arena)

	s.Ball.X = s.Arena.Width / 2
	s.Ball.Y = s.Arena.Height / 2
	s.Ball.Radius = BallRadius
	s.Ball.SpeedX = base
	s.Ball.SpeedY = base
	s.Ball.Color = ColorNormal

	s.Paddle.Width = PaddleWidth(s.Arena)
	s.Paddle.Height = PaddleHeight
	s.Paddle.X = s.Arena.Width/2 - s.Paddle.Width/2

	s.Round.Score = 0
	s.Round.Bounces = 0
	s.Round.Level = InitialLevel
	s.Countdown = CountdownStart
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
