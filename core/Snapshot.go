package core

type BallView struct {
	X, Y   float64
	Radius float64
	Color  ColorTag
}

type PaddleView struct {
	X, Y          float64
	Width, Height float64
}

// Snapshot is a copy of the state for renderers.
type Snapshot struct {
	Arena     Arena
	Ball      BallView
	Paddle    PaddleView
	Score     int
	BestScore int
	Bounces   int
	Level     int
	Phase     Phase
	Countdown int
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Arena: s.Arena,
		Ball: BallView{
			X:      s.Ball.X,
			Y:      s.Ball.Y,
			Radius: s.Ball.Radius,
			Color:  s.Ball.Color,
		},
		Paddle: PaddleView{
			X:      s.Paddle.X,
			Y:      s.Paddle.Top(s.Arena),
			Width:  s.Paddle.Width,
			Height: s.Paddle.Height,
		},
		Score:     s.Round.Score,
		BestScore: s.Round.BestScore,
		Bounces:   s.Round.Bounces,
		Level:     s.Round.Level,
		Phase:     s.Phase,
		Countdown: s.Countdown,
	}
}
