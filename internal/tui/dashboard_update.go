package tui

import (
	"errors"

	"tempo/internal/action"
	"tempo/internal/config"
	"tempo/internal/util"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) Init() tea.Cmd {
	return tickCmd(m.tick)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient status on keypress
	if _, ok := msg.(tea.KeyMsg); ok && m.inputMode == inputNone {
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.Message != "" {
			m.Message = ""
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		target := config.ProgressBarWidth
		if m.width > 0 && m.width < config.CompactModeThreshold {
			target = util.Clamp(m.width/2, config.MinProgressBarWidth, config.ProgressBarWidth)
		}
		m.progress.Width = target
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DashboardModel) handleTick(msg tea.Msg) (tea.Model, tea.Cmd) {
	ev := m.ctrl.OnTick()

	if err := m.ctrl.ClockErr(); err != nil && !m.clockErrShown {
		util.LogError("clock sample", err)
		m.clockErrShown = true
		m.setStatusError("Timing source unavailable: timer stalled")
	}

	if ev.Expired {
		wasSequence := m.ctrl.Sequence() != nil
		res := m.dispatcher.OnCountdownExpired(m.ctrl, m.settings.Action, m.settings.SoundEnabled)
		m.applyDispatchResult(res, wasSequence)
	}

	newProg, _ := m.progress.Update(msg)
	m.progress = newProg.(progress.Model)
	return m, tickCmd(m.tick)
}

func (m *DashboardModel) applyDispatchResult(res action.Result, wasSequence bool) {
	if res.Err != nil {
		if errors.Is(res.Err, action.ErrMissingResource) {
			m.setStatusError("Cannot open timeout target: " + res.Err.Error())
		} else {
			util.LogError("timeout action", res.Err)
		}
	}
	if res.Message != "" {
		m.Message = res.Message
	}
	// A plain countdown expiry or a finished sequence closes the session.
	// The run consumed its whole planned duration, so that is what the
	// history records; the per-phase counter has already been reset.
	if res.PhaseDone || !wasSequence {
		m.finishSession(true, res.Cycles, m.sessionTotal)
	}
}

func (m *DashboardModel) finishSession(completed bool, cycles, elapsed int) {
	if m.db == nil || m.sessionID == 0 {
		return
	}
	if err := m.db.FinishSession(m.ctx, m.sessionID, elapsed, cycles, completed); err != nil {
		util.LogError("finish session", err)
	}
	m.sessionID = 0
	m.sessionTotal = 0
}

func (m *DashboardModel) openSession(mode string, totalSeconds int) {
	if m.db == nil {
		return
	}
	id, err := m.db.StartSession(m.ctx, mode, totalSeconds)
	if err != nil {
		util.LogError("start session", err)
		return
	}
	m.sessionID = id
	m.sessionTotal = totalSeconds
}

func (m *DashboardModel) persistSettings() {
	if m.db == nil {
		return
	}
	if err := m.db.SaveSettings(m.ctx, m.settings); err != nil {
		util.LogError("save settings", err)
	}
}
