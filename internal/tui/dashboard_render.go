package tui

import (
	"fmt"
	"strings"

	"tempo/internal/config"
	"tempo/internal/timer"

	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTimer())
	b.WriteString("\n")
	if line := m.renderSequenceLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if bar := m.renderProgress(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderPresets())
	b.WriteString("\n")
	if m.inputMode != inputNone {
		b.WriteString(m.renderInput())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m DashboardModel) renderHeader() string {
	st := m.ctrl.State()
	mode := strings.ToUpper(st.Mode.String())
	badge := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("[" + mode + "]")
	header := renderLogo() + " " + badge
	if m.settings.SubSecond {
		header += " " + styleHelp.Render("·0.1s")
	}
	return header
}

func (m DashboardModel) renderTimer() string {
	st := m.ctrl.State()

	var text string
	switch st.Mode {
	case timer.ModeClock:
		text = formatWallClock(m.clk.Now())
	case timer.ModeCountdown:
		if frac := m.ctrl.SubSecondProgress(); m.settings.SubSecond && !st.Paused && !st.Expired() && frac > 0 {
			text = formatSubSecond(st.Remaining()-1, 1-frac)
		} else {
			text = formatSeconds(st.Remaining())
		}
	case timer.ModeCountUp:
		if m.settings.SubSecond && !st.Paused {
			text = formatSubSecond(st.ElapsedSeconds, m.ctrl.SubSecondProgress())
		} else {
			text = formatSeconds(st.ElapsedSeconds)
		}
	}

	style := styleTimerRunning
	switch {
	case st.Mode == timer.ModeCountdown && st.Expired():
		style = styleTimerExpired
	case st.Paused && m.sessionID == 0:
		style = styleTimerIdle
	case st.Paused:
		style = styleTimerPaused
	}
	if seq := m.ctrl.Sequence(); seq != nil && !seq.WorkPhase(seq.CurrentIndex) {
		style = styleBreak
	}

	framed := styleFrame.Render(style.Render(text))
	if st.Paused && m.sessionID != 0 {
		framed += "\n" + styleTimerPaused.Render("PAUSED")
	}
	return framed
}

func (m DashboardModel) renderSequenceLine() string {
	seq := m.ctrl.Sequence()
	if seq == nil {
		return ""
	}
	phase := "work"
	if !seq.WorkPhase(seq.CurrentIndex) {
		phase = "break"
	}
	return styleHelp.Render(fmt.Sprintf("Phase %d/%d (%s) · Cycle %d/%d",
		seq.CurrentIndex+1, len(seq.Phases), phase, seq.CompletedCycles+1, seq.TargetCycles))
}

func (m DashboardModel) renderProgress() string {
	st := m.ctrl.State()
	if st.Mode != timer.ModeCountdown || st.TotalSeconds == 0 {
		return ""
	}
	return m.progress.ViewAs(float64(st.ElapsedSeconds) / float64(st.TotalSeconds))
}

func (m DashboardModel) renderPresets() string {
	if len(m.presets) == 0 {
		return styleHelp.Render("No presets. Press w to save the current timer.")
	}
	start := 0
	if m.presetIdx >= config.MaxVisiblePresets {
		start = m.presetIdx - config.MaxVisiblePresets + 1
	}
	end := start + config.MaxVisiblePresets
	if end > len(m.presets) {
		end = len(m.presets)
	}

	var b strings.Builder
	b.WriteString(styleHelp.Render("Presets:"))
	b.WriteString("\n")
	for i := start; i < end; i++ {
		p := m.presets[i]
		label := fmt.Sprintf("%s (%s)", p.Name, formatSeconds(p.TotalSeconds))
		if p.Pomodoro() {
			label = fmt.Sprintf("%s (%d phases × %d)", p.Name, len(p.Phases), p.TargetCycles)
		}
		label = truncateLabel(label, 40)
		if i == m.presetIdx {
			b.WriteString(styleSelected.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderInput() string {
	prompt := "Timer duration:"
	if m.inputMode == inputPresetName {
		prompt = "Preset name:"
	}
	return prompt + " " + m.textInput.View()
}

func (m DashboardModel) renderStatus() string {
	if m.err != nil {
		return styleError.Render(m.err.Error())
	}
	if m.Message != "" {
		return styleMessage.Render(m.Message)
	}
	return ""
}

func (m DashboardModel) renderFooter() string {
	return styleHelp.Render("s start/pause · x stop · i set timer · p pomodoro · c clock · u count-up · w save preset · enter apply · D delete · d 0.1s · q quit")
}
