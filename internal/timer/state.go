// Package timer holds the timing-and-phase engine: the timer state, the
// elapsed-time accumulator, the Pomodoro phase sequence, and the
// controller that ties them to the tick source.
package timer

// Mode selects what the main display counts. Exactly one mode is active
// at a time.
type Mode int

const (
	ModeClock Mode = iota
	ModeCountdown
	ModeCountUp
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeCountdown:
		return "countdown"
	case ModeCountUp:
		return "countup"
	}
	return "unknown"
}

// State is the mutable heart of a running timer. For ModeCountdown,
// ElapsedSeconds never exceeds TotalSeconds; reaching it is the
// termination signal.
type State struct {
	Mode           Mode
	TotalSeconds   int
	ElapsedSeconds int
	Paused         bool
	Notified       bool // set once per cycle to suppress duplicate expiry handling
}

// Remaining returns the countdown seconds left, clamped at zero.
func (s State) Remaining() int {
	rem := s.TotalSeconds - s.ElapsedSeconds
	if rem < 0 {
		return 0
	}
	return rem
}

// Expired reports whether a countdown has consumed its total.
func (s State) Expired() bool {
	return s.Mode == ModeCountdown && s.TotalSeconds > 0 && s.ElapsedSeconds >= s.TotalSeconds
}

// Reset re-arms the state for a fresh run of totalSeconds.
func (s *State) Reset(totalSeconds int) {
	s.TotalSeconds = totalSeconds
	s.ElapsedSeconds = 0
	s.Paused = false
	s.Notified = false
}
