package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tempo/internal/action"
	"tempo/internal/clock"
	"tempo/internal/database"

	tea "github.com/charmbracelet/bubbletea"
)

type testNotifier struct {
	messages []string
}

func (n *testNotifier) Notify(message string, playSound bool) error {
	n.messages = append(n.messages, message)
	return nil
}

type testSystem struct {
	calls []string
}

func (s *testSystem) LockSession() error         { s.calls = append(s.calls, "lock"); return nil }
func (s *testSystem) OpenPath(path string) error { s.calls = append(s.calls, "open"); return nil }
func (s *testSystem) OpenURL(url string) error   { s.calls = append(s.calls, "url"); return nil }
func (s *testSystem) Sleep() error               { s.calls = append(s.calls, "sleep"); return nil }
func (s *testSystem) Shutdown() error            { s.calls = append(s.calls, "shutdown"); return nil }
func (s *testSystem) Restart() error             { s.calls = append(s.calls, "restart"); return nil }

type testDashboard struct {
	model    DashboardModel
	fake     *clock.Fake
	notifier *testNotifier
	system   *testSystem
}

func setupTestDashboard(t *testing.T) *testDashboard {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	fake := clock.NewFake(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	m := NewDashboardModel(db, fake)
	m.width, m.height = 80, 24

	notifier := &testNotifier{}
	system := &testSystem{}
	m.dispatcher = action.NewDispatcher(notifier, system)
	return &testDashboard{model: m, fake: fake, notifier: notifier, system: system}
}

func (d *testDashboard) press(t *testing.T, key string) {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	}
	next, _ := d.model.Update(msg)
	d.model = next.(DashboardModel)
}

func (d *testDashboard) tick(t *testing.T, advance time.Duration) {
	t.Helper()
	d.fake.Advance(advance)
	next, _ := d.model.Update(TickMsg(d.fake.Now()))
	d.model = next.(DashboardModel)
}

func (d *testDashboard) typeText(t *testing.T, text string) {
	t.Helper()
	for _, r := range text {
		next, _ := d.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		d.model = next.(DashboardModel)
	}
}
