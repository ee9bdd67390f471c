package timer

import (
	"errors"
	"fmt"
)

// Sequence drives the Pomodoro work/break rotation. CompletedCycles
// increments only when CurrentIndex wraps from the last phase back to
// zero; reaching TargetCycles deactivates the sequence.
type Sequence struct {
	Phases          []int // durations in seconds
	CurrentIndex    int
	CompletedCycles int
	TargetCycles    int
	Active          bool
}

// MaxSequencePhases bounds the configurable phase list.
const MaxSequencePhases = 10

var ErrBadSequence = errors.New("invalid pomodoro sequence")

// NewSequence validates the phase list and repeat target.
func NewSequence(phases []int, targetCycles int) (*Sequence, error) {
	if len(phases) == 0 || len(phases) > MaxSequencePhases {
		return nil, fmt.Errorf("%w: %d phases", ErrBadSequence, len(phases))
	}
	for _, p := range phases {
		if p < 1 {
			return nil, fmt.Errorf("%w: phase duration %d", ErrBadSequence, p)
		}
	}
	if targetCycles < 1 {
		return nil, fmt.Errorf("%w: target cycles %d", ErrBadSequence, targetCycles)
	}
	return &Sequence{Phases: phases, TargetCycles: targetCycles}, nil
}

// Start activates the sequence from the beginning and returns the first
// phase duration.
func (q *Sequence) Start() int {
	q.CurrentIndex = 0
	q.CompletedCycles = 0
	q.Active = true
	return q.Phases[0]
}

// PhaseOutcome describes what a phase expiry produced.
type PhaseOutcome struct {
	Done         bool // target cycles reached; sequence is now idle
	Stale        bool // countdown no longer matched the sequence; aborted
	NextSeconds  int  // duration of the phase to arm next (when !Done && !Stale)
	CycleStarted int  // 1-based cycle number when a new repeat begins, else 0
	PhaseIndex   int  // index of the phase that just finished
}

// OnPhaseExpiry advances the rotation. countdownTotal guards against
// stale state: if the running countdown's target was changed without
// going through Start, the sequence deactivates instead of resuming
// from a corrupted position.
func (q *Sequence) OnPhaseExpiry(countdownTotal int) PhaseOutcome {
	if !q.Active {
		return PhaseOutcome{Stale: true}
	}
	if countdownTotal != q.Phases[q.CurrentIndex] {
		q.Active = false
		return PhaseOutcome{Stale: true}
	}

	out := PhaseOutcome{PhaseIndex: q.CurrentIndex}
	q.CurrentIndex++
	if q.CurrentIndex >= len(q.Phases) {
		q.CurrentIndex = 0
		q.CompletedCycles++
		if q.CompletedCycles >= q.TargetCycles {
			q.Active = false
			out.Done = true
			return out
		}
		out.CycleStarted = q.CompletedCycles + 1
	}
	out.NextSeconds = q.Phases[q.CurrentIndex]
	return out
}

// WorkPhase reports whether the given phase index is a work phase.
// Phases alternate work/break starting at index zero.
func (q *Sequence) WorkPhase(index int) bool {
	return index%2 == 0
}

// Stop deactivates the sequence without touching its counters.
func (q *Sequence) Stop() {
	q.Active = false
}
