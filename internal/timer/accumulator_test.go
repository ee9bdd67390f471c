package timer

import (
	"testing"
	"time"

	"tempo/internal/clock"
)

func newTestAccumulator() (*Accumulator, *clock.Fake) {
	fake := clock.NewFake(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	acc := NewAccumulator(clock.NewSampler(fake))
	acc.Rebase()
	return acc, fake
}

func TestAdvanceCountdownClampsAtTotal(t *testing.T) {
	acc, fake := newTestAccumulator()
	s := State{Mode: ModeCountdown, TotalSeconds: 10}

	for i := 0; i < 30; i++ {
		fake.Advance(time.Second)
		acc.Advance(&s)
		if s.ElapsedSeconds > s.TotalSeconds {
			t.Fatalf("elapsed %d exceeded total %d", s.ElapsedSeconds, s.TotalSeconds)
		}
	}
	if s.ElapsedSeconds != 10 {
		t.Fatalf("elapsed = %d, want clamped 10", s.ElapsedSeconds)
	}
}

func TestAdvancePausedIsNoOp(t *testing.T) {
	acc, fake := newTestAccumulator()
	s := State{Mode: ModeCountdown, TotalSeconds: 60, ElapsedSeconds: 5, Paused: true}
	before := s

	fake.Advance(10 * time.Second)
	acc.Advance(&s)
	if s != before {
		t.Fatalf("paused advance mutated state: %+v -> %+v", before, s)
	}
}

func TestResumeDoesNotCountPausedInterval(t *testing.T) {
	acc, fake := newTestAccumulator()
	s := State{Mode: ModeCountdown, TotalSeconds: 600}

	fake.Advance(5 * time.Second)
	acc.Advance(&s)
	if s.ElapsedSeconds != 5 {
		t.Fatalf("elapsed = %d, want 5", s.ElapsedSeconds)
	}

	s.Paused = true
	fake.Advance(3 * time.Minute) // long pause
	acc.Advance(&s)

	s.Paused = false
	acc.Rebase()
	fake.Advance(2 * time.Second)
	acc.Advance(&s)
	if s.ElapsedSeconds != 7 {
		t.Fatalf("elapsed after resume = %d, want 7", s.ElapsedSeconds)
	}
}

func TestAdvanceCarriesSubSecondRemainder(t *testing.T) {
	acc, fake := newTestAccumulator()
	s := State{Mode: ModeCountUp}

	// 10 ticks of 999ms: truncation per tick would lose a second.
	for i := 0; i < 10; i++ {
		fake.Advance(999 * time.Millisecond)
		acc.Advance(&s)
	}
	if s.ElapsedSeconds != 9 {
		t.Fatalf("elapsed = %d, want 9 (9.99s truncated)", s.ElapsedSeconds)
	}
}

func TestAdvanceCountUpUnbounded(t *testing.T) {
	acc, fake := newTestAccumulator()
	s := State{Mode: ModeCountUp}

	fake.Advance(2 * time.Hour)
	acc.Advance(&s)
	if s.ElapsedSeconds != 7200 {
		t.Fatalf("elapsed = %d, want 7200", s.ElapsedSeconds)
	}
}

func TestAdvanceClockModeUntouched(t *testing.T) {
	acc, fake := newTestAccumulator()
	s := State{Mode: ModeClock}

	fake.Advance(time.Minute)
	acc.Advance(&s)
	if s.ElapsedSeconds != 0 {
		t.Fatalf("clock mode accumulated %d seconds", s.ElapsedSeconds)
	}
}
