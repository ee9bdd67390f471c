package config

import "time"

// Timer defaults.
const (
	DefaultCountdown  = 25 * time.Minute
	DefaultWorkPhase  = 25 * time.Minute
	DefaultShortBreak = 5 * time.Minute
	DefaultCycles     = 4
)

// Tick cadences. SubSecondTick applies while sub-second display is enabled.
const (
	NormalTick    = time.Second
	SubSecondTick = 100 * time.Millisecond
)

// Database/application settings.
const (
	AppName    = "tempo"
	DBFileName = "tempo.db"
)
