package models

import "time"

// Preset is a saved timer configuration selectable from the dashboard.
type Preset struct {
	ID            int64
	Name          string
	TotalSeconds  int
	Phases        []int // Pomodoro phase durations in seconds; empty for plain countdowns
	TargetCycles  int   // 0 for plain countdowns
	TimeoutAction string
	ActionPayload *string // file path or URL, depending on the action
	CreatedAt     time.Time
}

// Pomodoro reports whether the preset starts a phase sequence rather
// than a plain countdown.
func (p Preset) Pomodoro() bool {
	return len(p.Phases) > 0 && p.TargetCycles > 0
}

// Session records one finished (or abandoned) timer run.
type Session struct {
	ID             int64
	Mode           string // countdown, countup, pomodoro
	TotalSeconds   int
	ElapsedSeconds int
	Cycles         int // completed Pomodoro cycles, 0 otherwise
	StartedAt      time.Time
	EndedAt        *time.Time
	Completed      bool
}
