// Package clock abstracts time sources so the timing engine stays
// deterministic under test. Production code injects Real; tests inject
// Fake and advance it by hand.
package clock

import (
	"errors"
	"time"
)

// ErrUnavailable indicates the platform clock produced no usable reading.
var ErrUnavailable = errors.New("monotonic clock unavailable")

// Clock supplies current-time readings.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock. Go time.Time values carry a monotonic
// component, so deltas between readings are immune to wall-clock
// adjustments (NTP sync, DST).
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fake is a manually advanced clock for tests.
type Fake struct {
	Current time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{Current: start}
}

func (f *Fake) Now() time.Time { return f.Current }

func (f *Fake) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

func (f *Fake) Set(t time.Time) { f.Current = t }
