package timer

import "tempo/internal/clock"

// Controller owns the timer state and the optional Pomodoro sequence
// and applies every tick-driven mutation. All methods are called from
// the single UI goroutine; there is no concurrent writer.
type Controller struct {
	acc   *Accumulator
	state State
	seq   *Sequence
}

// NewController builds a controller around the given clock. A nil
// clock falls back to the system clock.
func NewController(c clock.Clock) *Controller {
	return &Controller{
		acc:   NewAccumulator(clock.NewSampler(c)),
		state: State{Mode: ModeClock},
	}
}

// State returns a copy of the current timer state.
func (c *Controller) State() State { return c.state }

// Sequence returns the active Pomodoro sequence, or nil.
func (c *Controller) Sequence() *Sequence {
	if c.seq == nil || !c.seq.Active {
		return nil
	}
	return c.seq
}

// StartCountdown arms a fresh countdown of totalSeconds, abandoning any
// running Pomodoro sequence.
func (c *Controller) StartCountdown(totalSeconds int) {
	if c.seq != nil {
		c.seq.Stop()
	}
	c.state.Mode = ModeCountdown
	c.state.Reset(totalSeconds)
	c.acc.Rebase()
}

// StartCountUp starts the stopwatch from zero.
func (c *Controller) StartCountUp() {
	if c.seq != nil {
		c.seq.Stop()
	}
	c.state.Mode = ModeCountUp
	c.state.Reset(0)
	c.acc.Rebase()
}

// StartSequence begins a Pomodoro session and arms the first phase.
func (c *Controller) StartSequence(phases []int, targetCycles int) error {
	seq, err := NewSequence(phases, targetCycles)
	if err != nil {
		return err
	}
	c.seq = seq
	first := seq.Start()
	c.state.Mode = ModeCountdown
	c.state.Reset(first)
	c.acc.Rebase()
	return nil
}

// AdvancePhase moves an active sequence past an expired phase, re-arming
// the countdown for the next one. Terminal or stale outcomes revert the
// state to an idle countdown display.
func (c *Controller) AdvancePhase() PhaseOutcome {
	if c.seq == nil {
		return PhaseOutcome{Stale: true}
	}
	out := c.seq.OnPhaseExpiry(c.state.TotalSeconds)
	if out.Done || out.Stale {
		c.state.Mode = ModeCountdown
		c.state.Reset(c.state.TotalSeconds)
		c.state.Paused = true
		return out
	}
	c.state.Reset(out.NextSeconds)
	c.acc.Rebase()
	return out
}

// SwitchMode changes the display mode, abandoning any sequence. The
// elapsed counter restarts from zero.
func (c *Controller) SwitchMode(m Mode) {
	if c.seq != nil {
		c.seq.Stop()
	}
	c.state.Mode = m
	c.state.Reset(c.state.TotalSeconds)
	if m != ModeClock {
		c.acc.Rebase()
	}
}

// TogglePause flips the pause flag and returns the new value. Resume
// re-baselines the clock so the paused interval is never counted.
func (c *Controller) TogglePause() bool {
	if c.state.Mode == ModeClock {
		return false
	}
	c.state.Paused = !c.state.Paused
	if !c.state.Paused {
		c.acc.Rebase()
	}
	return c.state.Paused
}

// Stop idles the timer: sequence deactivated, elapsed cleared, paused.
func (c *Controller) Stop() {
	if c.seq != nil {
		c.seq.Stop()
	}
	c.state.Reset(c.state.TotalSeconds)
	c.state.Paused = true
}

// TickEvent reports what a tick produced.
type TickEvent struct {
	// Expired is true exactly once per countdown cycle, on the tick
	// that consumed the last remaining second.
	Expired bool
}

// OnTick advances elapsed time and flags a freshly expired countdown.
func (c *Controller) OnTick() TickEvent {
	c.acc.Advance(&c.state)
	if c.state.Expired() && !c.state.Notified {
		c.state.Notified = true
		return TickEvent{Expired: true}
	}
	return TickEvent{}
}

// SubSecondProgress exposes the fractional second for fast-cadence display.
func (c *Controller) SubSecondProgress() float64 {
	return c.acc.SubSecondProgress()
}

// ClockErr surfaces a degraded platform clock, if any.
func (c *Controller) ClockErr() error { return c.acc.Err() }
