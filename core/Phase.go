package core

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountdown:
		return "Countdown"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	}
	return "Unknown"
}

// Active reports whether a round is in play. The arena is frozen and the
// paddle follows input only while active.
func (p Phase) Active() bool {
	switch p {
	case PhaseCountdown, PhaseRunning:
		return true
	case PhaseIdle, PhaseEnded:
		return false
	}
	return false
}
