package core

import "math"

const MaxSpeed = 15       // 速度上限
const BouncePoints = 10   // 每次擊球得分
const BouncesPerLevel = 5 // 每幾次擊球升一級
const LevelSpeedFactor = 1.25

// Outcome reports what happened during one Advance call.
type Outcome struct {
	Bounced   bool
	LeveledUp bool
	NewBest   bool
	Missed    bool
}

// Advance moves the ball by elapsed frame units and resolves walls, paddle
// and floor. It always integrates, whatever the phase.
func Advance(s *State, elapsed float64) Outcome {
	var out Outcome
	ball := &s.Ball
	arena := s.Arena

	ball.X += ball.SpeedX * elapsed
	ball.Y += ball.SpeedY * elapsed

	if isCollidesWithSideWall(ball, arena) {
		ball.SpeedX = -ball.SpeedX
		ball.X = clamp(ball.X, ball.Radius, arena.Width-ball.Radius)
	}

	if isCollidesWithTopWall(ball) {
		ball.SpeedY = -ball.SpeedY
		ball.Y = ball.Radius
	}

	if isTouchPaddle(ball, &s.Paddle, arena) {
		out.Bounced = true
		bounce(s, &out)
	}

	if !out.Bounced && isBallOutSide(ball, arena) {
		out.Missed = true
		ball.Y = arena.Height - ball.Radius
	}

	return out
}

func bounce(s *State, out *Outcome) {
	ball := &s.Ball
	paddle := &s.Paddle

	hitPos := (ball.X - paddle.X) / paddle.Width
	angle := (hitPos - 0.5) * 1.5

	ball.SpeedY = -math.Abs(ball.SpeedY)
	ball.SpeedX += angle * 2

	s.Round.Score += BouncePoints
	s.Round.Bounces++

	if s.Round.Bounces%BouncesPerLevel == 0 {
		levelUp(s)
		out.LeveledUp = true
	}

	// level speeds grow past MaxSpeed from level 10 on, so clamp last
	ball.SpeedX = clamp(ball.SpeedX, -MaxSpeed, MaxSpeed)
	ball.SpeedY = clamp(ball.SpeedY, -MaxSpeed, MaxSpeed)

	if s.Round.Score > s.Round.BestScore {
		s.Round.BestScore = s.Round.Score
		out.NewBest = true
	}
}

func levelUp(s *State) {
	s.Round.Level++

	speed := BaseSpeed(s.Arena) * math.Pow(LevelSpeedFactor, float64(s.Round.Level-1))
	s.Ball.SpeedX = sign(s.Ball.SpeedX) * speed
	s.Ball.SpeedY = -speed
}

func isCollidesWithSideWall(ball *Ball, arena Arena) bool {
	return ball.X+ball.Radius > arena.Width || ball.X-ball.Radius < 0
}

func isCollidesWithTopWall(ball *Ball) bool {
	return ball.Y-ball.Radius < 0
}

// The horizontal test uses the ball's center, not its extent.
func isTouchPaddle(ball *Ball, paddle *Paddle, arena Arena) bool {
	return ball.Y+ball.Radius > arena.Height-PaddleTopOffset &&
		ball.Y-ball.Radius < arena.Height-PaddleBandOffset &&
		ball.X > paddle.X &&
		ball.X < paddle.Right()
}

func isBallOutSide(ball *Ball, arena Arena) bool {
	return ball.Y+ball.Radius > arena.Height
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
