package timer

import "tempo/internal/clock"

// Accumulator applies clock deltas to a State in whole seconds. The
// sub-second remainder is carried between calls so truncation never
// compounds into drift.
type Accumulator struct {
	sampler     *clock.Sampler
	carryMillis float64
}

func NewAccumulator(sampler *clock.Sampler) *Accumulator {
	return &Accumulator{sampler: sampler}
}

// Advance consumes a clock sample and adds the elapsed whole seconds to
// the state. A paused state is left untouched and no sample is taken,
// so no time debt accrues across a pause. Countdown elapsed time is
// clamped to the configured total.
func (a *Accumulator) Advance(s *State) {
	if s.Paused || s.Mode == ModeClock {
		return
	}
	a.carryMillis += a.sampler.SampleDeltaMillis()
	whole := int(a.carryMillis / 1000)
	if whole <= 0 {
		return
	}
	a.carryMillis -= float64(whole) * 1000

	s.ElapsedSeconds += whole
	if s.Mode == ModeCountdown && s.ElapsedSeconds > s.TotalSeconds {
		s.ElapsedSeconds = s.TotalSeconds
	}
}

// Rebase discards any interval accrued since the last sample, including
// the fractional carry. Resume is "treat the next tick as the new
// baseline", never "continue from the old one".
func (a *Accumulator) Rebase() {
	a.carryMillis = 0
	a.sampler.Rebaseline()
}

// SubSecondProgress exposes the fractional carry for sub-second display.
func (a *Accumulator) SubSecondProgress() float64 {
	return a.carryMillis / 1000
}

// Err surfaces a degraded platform clock.
func (a *Accumulator) Err() error {
	return a.sampler.Err()
}
