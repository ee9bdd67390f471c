package database

import (
	"context"
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	id, err := db.StartSession(ctx, "countdown", 1500)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := db.FinishSession(ctx, id, 1500, 0, true); err != nil {
		t.Fatalf("FinishSession failed: %v", err)
	}

	sessions, err := db.GetSessionsForDay(ctx, time.Now())
	if err != nil {
		t.Fatalf("GetSessionsForDay failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.Mode != "countdown" || s.ElapsedSeconds != 1500 || !s.Completed {
		t.Fatalf("unexpected session: %+v", s)
	}
	if s.EndedAt == nil {
		t.Fatalf("expected EndedAt to be set")
	}
}

func TestGetSessionsForDayFiltersByDate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, err := db.StartSession(ctx, "countup", 0); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	yesterday, err := db.GetSessionsForDay(ctx, time.Now().AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("GetSessionsForDay failed: %v", err)
	}
	if len(yesterday) != 0 {
		t.Fatalf("got %d sessions for yesterday, want 0", len(yesterday))
	}
}
