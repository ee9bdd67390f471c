package database

import (
	"context"
	"time"

	"tempo/internal/models"
)

// StartSession records the beginning of a timer run and returns its ID.
func (d *Database) StartSession(ctx context.Context, mode string, totalSeconds int) (int64, error) {
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (mode, total_seconds, started_at) VALUES (?, ?, ?)",
		mode, totalSeconds, time.Now())
	if err != nil {
		return 0, wrapSessionErr("start", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapSessionErr("start", 0, err)
}

// FinishSession closes a session record.
func (d *Database) FinishSession(ctx context.Context, id int64, elapsedSeconds, cycles int, completed bool) error {
	_, err := d.DB.ExecContext(ctx,
		"UPDATE sessions SET elapsed_seconds = ?, cycles = ?, ended_at = ?, completed = ? WHERE id = ?",
		elapsedSeconds, cycles, time.Now(), completed, id)
	return wrapSessionErr("finish", id, err)
}

// GetSessionsForDay returns sessions started on the given calendar day,
// oldest first.
func (d *Database) GetSessionsForDay(ctx context.Context, day time.Time) ([]models.Session, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	rows, err := d.DB.QueryContext(ctx,
		`SELECT id, mode, total_seconds, elapsed_seconds, cycles, started_at, ended_at, completed
		 FROM sessions WHERE started_at >= ? AND started_at < ? ORDER BY started_at ASC`,
		start, end)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Mode, &s.TotalSeconds, &s.ElapsedSeconds, &s.Cycles,
			&s.StartedAt, &s.EndedAt, &s.Completed); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, wrapSessionErr("list", 0, rows.Err())
}
