// Package tui is the dashboard shell around the timer engine: it owns
// the tick loop, key handling, and rendering.
package tui

import (
	"context"
	"time"

	"tempo/internal/action"
	"tempo/internal/clock"
	"tempo/internal/config"
	"tempo/internal/database"
	"tempo/internal/models"
	"tempo/internal/notify"
	"tempo/internal/timer"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

var AppVersion = "0"

// Input modes for the single modal text field.
const (
	inputNone = iota
	inputExpression
	inputPresetName
)

// --- Model ---
type DashboardModel struct {
	ctx        context.Context
	db         *database.Database
	clk        clock.Clock
	ctrl       *timer.Controller
	dispatcher *action.Dispatcher

	settings     database.Settings
	presets      []models.Preset
	presetIdx    int
	sessionID    int64 // open session row; 0 when idle
	sessionTotal int   // planned duration of the open session, in seconds

	inputMode int
	textInput textinput.Model
	progress  progress.Model

	tick time.Duration

	err           error
	Message       string
	clockErrShown bool
	width, height int
}

func NewDashboardModel(db *database.Database, clk clock.Clock) DashboardModel {
	if clk == nil {
		clk = clock.Real{}
	}
	ti := textinput.New()
	ti.Placeholder = "25, 1h30m, 90s, 17 30t..."
	ti.CharLimit = config.MaxExpressionLength
	ti.Width = 30

	m := DashboardModel{
		ctx:        context.Background(),
		db:         db,
		clk:        clk,
		ctrl:       timer.NewController(clk),
		dispatcher: action.NewDispatcher(notify.NewDesktop(config.AppName), action.NewShell()),
		textInput:  ti,
		progress:   progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = config.ProgressBarWidth
	if db != nil {
		m.settings = db.LoadSettings(m.ctx)
	} else {
		m.settings = database.DefaultSettings()
	}
	m.tick = m.cadence()
	m.refreshPresets()

	// The idle display shows the configured countdown, armed but paused.
	m.ctrl.StartCountdown(m.settings.TotalSeconds)
	m.ctrl.TogglePause()
	return m
}

// AutoStart begins the configured countdown immediately instead of
// waiting for a keypress. Used by the quick-start CLI path.
func (m DashboardModel) AutoStart() DashboardModel {
	m.ctrl.TogglePause()
	m.openSession("countdown", m.settings.TotalSeconds)
	return m
}

// SubSecondDisplay overrides the persisted display precision.
func (m DashboardModel) SubSecondDisplay(on bool) DashboardModel {
	m.settings.SubSecond = on
	m.tick = m.cadence()
	return m
}

// cadence recomputes the tick interval from the display-precision
// setting. It is read once per scheduled tick, never concurrently.
func (m DashboardModel) cadence() time.Duration {
	if m.settings.SubSecond {
		return config.SubSecondTick
	}
	return config.NormalTick
}

func (m *DashboardModel) refreshPresets() {
	if m.db == nil {
		return
	}
	presets, err := m.db.GetPresets(m.ctx)
	if err != nil {
		m.setStatusError("Error loading presets: " + err.Error())
		return
	}
	m.presets = presets
	if m.presetIdx >= len(m.presets) {
		m.presetIdx = 0
	}
}

func (m *DashboardModel) setStatusError(msg string) {
	m.err = statusError(msg)
}

type statusError string

func (e statusError) Error() string { return string(e) }

// Styles shared across render files.
var (
	styleTimerIdle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleTimerRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	styleTimerPaused  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	styleTimerExpired = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleBreak        = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	styleError        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleMessage      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styleHelp         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleSelected     = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	styleFrame        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 4)
)
