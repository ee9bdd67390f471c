package timer

import (
	"errors"
	"testing"
)

func TestNewSequenceValidation(t *testing.T) {
	if _, err := NewSequence(nil, 1); !errors.Is(err, ErrBadSequence) {
		t.Fatalf("empty phases error = %v, want ErrBadSequence", err)
	}
	if _, err := NewSequence(make([]int, 11), 1); !errors.Is(err, ErrBadSequence) {
		t.Fatalf("11 phases error = %v, want ErrBadSequence", err)
	}
	if _, err := NewSequence([]int{1500, 0}, 1); !errors.Is(err, ErrBadSequence) {
		t.Fatalf("zero phase error = %v, want ErrBadSequence", err)
	}
	if _, err := NewSequence([]int{1500}, 0); !errors.Is(err, ErrBadSequence) {
		t.Fatalf("zero cycles error = %v, want ErrBadSequence", err)
	}
	if _, err := NewSequence([]int{1500, 300}, 4); err != nil {
		t.Fatalf("valid sequence rejected: %v", err)
	}
}

func TestSequenceCycleCounting(t *testing.T) {
	q, err := NewSequence([]int{1500, 300, 1500, 600}, 2)
	if err != nil {
		t.Fatalf("NewSequence failed: %v", err)
	}
	total := q.Start()
	if total != 1500 {
		t.Fatalf("Start returned %d, want 1500", total)
	}

	expire := func() PhaseOutcome {
		out := q.OnPhaseExpiry(total)
		if !out.Done && !out.Stale {
			total = out.NextSeconds
		}
		return out
	}

	for i := 0; i < 4; i++ {
		out := expire()
		if out.Stale {
			t.Fatalf("unexpected stale outcome at expiry %d", i+1)
		}
	}
	if q.CompletedCycles != 1 || q.CurrentIndex != 0 {
		t.Fatalf("after 4 expiries: cycles=%d index=%d, want 1/0", q.CompletedCycles, q.CurrentIndex)
	}

	var last PhaseOutcome
	for i := 0; i < 4; i++ {
		last = expire()
	}
	if !last.Done {
		t.Fatalf("after 8 expiries expected Done, got %+v", last)
	}
	if q.Active {
		t.Fatalf("sequence still active after reaching target cycles")
	}
}

func TestSequenceSignalsNewCycle(t *testing.T) {
	q, _ := NewSequence([]int{1500, 300}, 3)
	q.Start()

	out := q.OnPhaseExpiry(1500)
	if out.CycleStarted != 0 {
		t.Fatalf("mid-cycle expiry reported CycleStarted=%d", out.CycleStarted)
	}
	out = q.OnPhaseExpiry(300)
	if out.CycleStarted != 2 {
		t.Fatalf("wrap expiry reported CycleStarted=%d, want 2", out.CycleStarted)
	}
	if out.NextSeconds != 1500 {
		t.Fatalf("wrap expiry armed %d seconds, want 1500", out.NextSeconds)
	}
}

func TestSequenceStaleGuard(t *testing.T) {
	q, _ := NewSequence([]int{1500, 300}, 2)
	q.Start()

	// User retargeted the countdown without going through Start.
	out := q.OnPhaseExpiry(900)
	if !out.Stale {
		t.Fatalf("mismatched countdown total should abort, got %+v", out)
	}
	if q.Active {
		t.Fatalf("sequence should deactivate on stale expiry")
	}
}

func TestSequenceWorkPhaseAlternation(t *testing.T) {
	q, _ := NewSequence([]int{1500, 300, 1500, 600}, 1)
	if !q.WorkPhase(0) || q.WorkPhase(1) || !q.WorkPhase(2) || q.WorkPhase(3) {
		t.Fatalf("work/break alternation broken")
	}
}
