package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 48

	// ProgressBarWidth is the preferred width of the countdown bar.
	ProgressBarWidth = 30

	// MinProgressBarWidth is the floor the bar shrinks to on narrow terminals.
	MinProgressBarWidth = 10
)

// Display limits.
const (
	// MaxVisiblePresets limits presets shown before scrolling.
	MaxVisiblePresets = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxExpressionLength bounds the time-expression input field.
	MaxExpressionLength = 40

	// MaxPresetNameLength bounds preset names.
	MaxPresetNameLength = 30
)
