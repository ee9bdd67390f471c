package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tempo/internal/config"
	"tempo/internal/database"
	"tempo/internal/util"

	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a summary of the day's timer sessions into
// the reports directory and returns the output path.
func GeneratePDFReport(ctx context.Context, db *database.Database, day time.Time) (string, error) {
	sessions, err := db.GetSessionsForDay(ctx, day)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Timer Report: %s", day.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	totalTracked := 0
	completed := 0
	for i, s := range sessions {
		status := "abandoned"
		if s.Completed {
			status = "completed"
			completed++
		}
		line := fmt.Sprintf("%d. %s  %-10s %s", i+1, s.StartedAt.Format("15:04"), s.Mode, formatSeconds(s.ElapsedSeconds))
		if s.Cycles > 0 {
			line += fmt.Sprintf("  %d cycles", s.Cycles)
		}
		line += "  (" + status + ")"
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
		totalTracked += s.ElapsedSeconds
	}
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No sessions recorded.")
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total tracked: %s across %d sessions (%d completed)",
		formatSeconds(totalTracked), len(sessions), completed))

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	out := filepath.Join(dir, fmt.Sprintf("tempo_report_%s.pdf", day.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(out); err != nil {
		return "", err
	}
	return out, nil
}
