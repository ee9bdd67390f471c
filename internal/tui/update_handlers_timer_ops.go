package tui

import (
	"errors"
	"strings"

	"tempo/internal/action"
	"tempo/internal/config"
	"tempo/internal/models"
	"tempo/internal/timeexpr"
	"tempo/internal/timer"
	"tempo/internal/util"

	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.persistSettings()
		st := m.ctrl.State()
		m.finishSession(false, 0, st.ElapsedSeconds)
		return m, tea.Quit
	case "s":
		return m.handleStartPause()
	case "x":
		return m.handleStop()
	case "p":
		return m.handlePomodoroStart()
	case "c":
		return m.handleSwitch(timer.ModeClock)
	case "u":
		return m.handleSwitch(timer.ModeCountUp)
	case "i":
		m.inputMode = inputExpression
		m.textInput.CharLimit = config.MaxExpressionLength
		m.textInput.Reset()
		m.textInput.Focus()
		return m, nil
	case "w":
		m.inputMode = inputPresetName
		m.textInput.CharLimit = config.MaxPresetNameLength
		m.textInput.Reset()
		m.textInput.Focus()
		return m, nil
	case "d":
		m.settings.SubSecond = !m.settings.SubSecond
		m.tick = m.cadence()
		m.persistSettings()
		return m, nil
	case "j", "down":
		if len(m.presets) > 0 {
			m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		}
		return m, nil
	case "k", "up":
		if len(m.presets) > 0 {
			m.presetIdx = (m.presetIdx + len(m.presets) - 1) % len(m.presets)
		}
		return m, nil
	case "enter":
		return m.handlePresetApply()
	case "D":
		return m.handlePresetDelete()
	}
	return m, nil
}

// handleStartPause starts the configured countdown when idle, otherwise
// toggles pause. Resume re-baselines the clock, so the paused interval
// never counts.
func (m DashboardModel) handleStartPause() (tea.Model, tea.Cmd) {
	st := m.ctrl.State()
	if st.Mode == timer.ModeClock {
		return m, nil
	}
	if m.sessionID == 0 && st.Mode == timer.ModeCountdown {
		m.startCountdown(m.settings.TotalSeconds)
		return m, nil
	}
	m.ctrl.TogglePause()
	return m, nil
}

func (m DashboardModel) handleStop() (tea.Model, tea.Cmd) {
	st := m.ctrl.State()
	m.ctrl.Stop()
	m.finishSession(false, 0, st.ElapsedSeconds)
	return m, nil
}

func (m DashboardModel) handlePomodoroStart() (tea.Model, tea.Cmd) {
	st := m.ctrl.State()
	m.finishSession(false, 0, st.ElapsedSeconds)
	if err := m.ctrl.StartSequence(m.settings.Phases, m.settings.TargetCycles); err != nil {
		m.setStatusError("Cannot start Pomodoro: " + err.Error())
		return m, nil
	}
	total := 0
	for _, p := range m.settings.Phases {
		total += p
	}
	m.openSession("pomodoro", total*m.settings.TargetCycles)
	return m, nil
}

func (m DashboardModel) handleSwitch(mode timer.Mode) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()
	m.finishSession(false, 0, st.ElapsedSeconds)
	m.ctrl.SwitchMode(mode)
	if mode == timer.ModeCountUp {
		m.openSession("countup", 0)
	}
	return m, nil
}

func (m DashboardModel) handlePresetApply() (tea.Model, tea.Cmd) {
	if m.presetIdx >= len(m.presets) {
		return m, nil
	}
	p := m.presets[m.presetIdx]
	st := m.ctrl.State()
	m.finishSession(false, 0, st.ElapsedSeconds)

	kind, err := action.ParseKind(p.TimeoutAction)
	if err != nil {
		util.LogError("preset action", err)
	}
	m.settings.Action, _ = action.Downgrade(action.Action{Kind: kind, Payload: util.Deref(p.ActionPayload)})

	if p.Pomodoro() {
		m.settings.Phases = p.Phases
		m.settings.TargetCycles = p.TargetCycles
		return m.handlePomodoroStart()
	}
	m.settings.TotalSeconds = p.TotalSeconds
	m.startCountdown(p.TotalSeconds)
	return m, nil
}

func (m DashboardModel) handlePresetDelete() (tea.Model, tea.Cmd) {
	if m.db == nil || m.presetIdx >= len(m.presets) {
		return m, nil
	}
	if err := m.db.DeletePreset(m.ctx, m.presets[m.presetIdx].ID); err != nil {
		m.setStatusError("Error deleting preset: " + err.Error())
		return m, nil
	}
	m.refreshPresets()
	return m, nil
}

func (m *DashboardModel) startCountdown(totalSeconds int) {
	m.ctrl.StartCountdown(totalSeconds)
	m.openSession("countdown", totalSeconds)
}

func (m DashboardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = inputNone
		m.textInput.Blur()
		return m, nil
	case tea.KeyEnter:
		mode := m.inputMode
		value := strings.TrimSpace(m.textInput.Value())
		m.inputMode = inputNone
		m.textInput.Blur()
		if mode == inputExpression {
			return m.submitExpression(value)
		}
		return m.submitPresetName(value)
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) submitExpression(value string) (tea.Model, tea.Cmd) {
	secs, err := timeexpr.Parse(value, m.clk.Now())
	switch {
	case errors.Is(err, timeexpr.ErrInvalidFormat):
		m.setStatusError("Invalid time expression: " + value)
		return m, nil
	case errors.Is(err, timeexpr.ErrOutOfRange):
		m.setStatusError("Duration out of range: " + value)
		return m, nil
	case err != nil:
		m.setStatusError(err.Error())
		return m, nil
	}
	st := m.ctrl.State()
	m.finishSession(false, 0, st.ElapsedSeconds)
	m.settings.TotalSeconds = secs
	m.persistSettings()
	m.startCountdown(secs)
	return m, nil
}

func (m DashboardModel) submitPresetName(name string) (tea.Model, tea.Cmd) {
	if m.db == nil || name == "" {
		return m, nil
	}
	preset := models.Preset{
		Name:          name,
		TotalSeconds:  m.settings.TotalSeconds,
		TimeoutAction: m.settings.Action.Kind.String(),
	}
	if m.settings.Action.Payload != "" {
		preset.ActionPayload = util.Ptr(m.settings.Action.Payload)
	}
	if m.ctrl.Sequence() != nil {
		preset.Phases = m.settings.Phases
		preset.TargetCycles = m.settings.TargetCycles
	}
	if _, err := m.db.CreatePreset(m.ctx, preset); err != nil {
		m.setStatusError("Error saving preset: " + err.Error())
		return m, nil
	}
	m.Message = "Preset saved: " + name
	m.refreshPresets()
	return m, nil
}
