package tui

import (
	"fmt"
	"time"

	"tempo/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("T") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render("E") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Render("M") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("P") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render("O")
}

// formatSeconds renders a second count as MM:SS, growing to HH:MM:SS
// past an hour.
func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// formatSubSecond appends a tenths digit for the fast display cadence.
func formatSubSecond(total int, fraction float64) string {
	tenths := int(fraction * 10)
	if tenths < 0 {
		tenths = 0
	}
	if tenths > 9 {
		tenths = 9
	}
	return fmt.Sprintf("%s.%d", formatSeconds(total), tenths)
}

func formatWallClock(t time.Time) string {
	return t.Format("15:04:05")
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
