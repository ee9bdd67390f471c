package clock

import "time"

// Sampler converts successive clock readings into millisecond deltas.
// The first sample establishes a baseline and reports zero.
type Sampler struct {
	clock   Clock
	last    time.Time
	primed  bool
	stalled bool
}

func NewSampler(c Clock) *Sampler {
	if c == nil {
		c = Real{}
	}
	return &Sampler{clock: c}
}

// SampleDeltaMillis returns the milliseconds elapsed since the previous
// call and advances the baseline. Never negative: a backwards or zero
// reading degrades to 0, stalling the timer instead of corrupting it.
func (s *Sampler) SampleDeltaMillis() float64 {
	now := s.clock.Now()
	if now.IsZero() {
		s.stalled = true
		return 0
	}
	if !s.primed {
		s.last, s.primed = now, true
		return 0
	}
	delta := now.Sub(s.last)
	s.last = now
	if delta < 0 {
		return 0
	}
	return float64(delta) / float64(time.Millisecond)
}

// Rebaseline discards any interval accrued since the previous sample.
// Called on resume so paused time is never counted.
func (s *Sampler) Rebaseline() {
	now := s.clock.Now()
	if now.IsZero() {
		s.stalled = true
		return
	}
	s.last, s.primed = now, true
}

// Err reports ErrUnavailable once an unusable reading has been observed.
func (s *Sampler) Err() error {
	if s.stalled {
		return ErrUnavailable
	}
	return nil
}
