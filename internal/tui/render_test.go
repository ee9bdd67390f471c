package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{90, "01:30"},
		{1500, "25:00"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{5415, "01:30:15"},
		{-3, "00:00"},
	}
	for _, c := range cases {
		if got := formatSeconds(c.in); got != c.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSubSecond(t *testing.T) {
	if got := formatSubSecond(90, 0.42); got != "01:30.4" {
		t.Errorf("got %q", got)
	}
	if got := formatSubSecond(5, 0.99); got != "00:05.9" {
		t.Errorf("got %q", got)
	}
	// Out-of-range fractions clamp to a valid digit.
	if got := formatSubSecond(5, 1.7); got != "00:05.9" {
		t.Errorf("got %q", got)
	}
	if got := formatSubSecond(5, -0.2); got != "00:05.0" {
		t.Errorf("got %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	got := truncateLabel("a very long preset name indeed", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncation suffix, got %q", got)
	}
	if got := truncateLabel("anything", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestViewSmoke(t *testing.T) {
	d := setupTestDashboard(t)

	view := d.model.View()
	if !strings.Contains(view, "25:00") {
		t.Fatalf("idle view missing configured countdown:\n%s", view)
	}
	if !strings.Contains(view, "No presets") {
		t.Fatalf("view missing empty-preset hint:\n%s", view)
	}

	d.press(t, "s")
	d.tick(t, 10*time.Second)
	view = d.model.View()
	if !strings.Contains(view, "24:50") {
		t.Fatalf("running view missing remaining time:\n%s", view)
	}
}

func TestViewShowsSequenceLine(t *testing.T) {
	d := setupTestDashboard(t)
	d.model.settings.Phases = []int{60, 30}
	d.model.settings.TargetCycles = 3

	d.press(t, "p")
	view := d.model.View()
	if !strings.Contains(view, "Phase 1/2 (work) · Cycle 1/3") {
		t.Fatalf("view missing sequence line:\n%s", view)
	}
}

func TestViewClockMode(t *testing.T) {
	d := setupTestDashboard(t)
	d.press(t, "c")
	view := d.model.View()
	if !strings.Contains(view, "09:00:00") {
		t.Fatalf("clock view missing wall time:\n%s", view)
	}
}
