package core

import "time"

// FrameDuration is one frame unit of simulated time.
const FrameDuration = 16670 * time.Microsecond

// FrameUnits converts wall time between two frames into frame units.
func FrameUnits(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(FrameDuration)
}

// TickCountdown decrements the countdown. It returns true on the tick that
// reaches zero, after switching the phase to Running.
func TickCountdown(s *State) bool {
	if s.Phase != PhaseCountdown {
		return false
	}

	s.Countdown--
	if s.Countdown > 0 {
		return false
	}

	s.Countdown = 0
	s.Phase = PhaseRunning
	return true
}

// TickPhysics advances a running round. A miss ends the round.
func TickPhysics(s *State, elapsed float64) Outcome {
	if s.Phase != PhaseRunning {
		return Outcome{}
	}

	out := Advance(s, elapsed)
	if out.Missed {
		s.Phase = PhaseEnded
	}
	return out
}
