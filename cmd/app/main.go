package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tempo/internal/config"
	"tempo/internal/database"
	"tempo/internal/timeexpr"
	"tempo/internal/tui"
	"tempo/internal/util"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type CLI struct {
	Version   kong.VersionFlag `help:"Show version information"`
	DBPath    string           `help:"Path to the SQLite database" type:"path" env:"TEMPO_DB_PATH"`
	SubSecond bool             `help:"Show tenths of a second on the timer display"`

	Run    RunCmd    `cmd:"" default:"1" help:"Open the timer dashboard (default)"`
	Start  StartCmd  `cmd:"" help:"Start a countdown immediately from a time expression"`
	Report ReportCmd `cmd:"" help:"Write a PDF summary of a day's sessions"`
}

type RunCmd struct{}

func (r *RunCmd) Run(cli *CLI) error {
	db, err := openDatabase(cli.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	model := tui.NewDashboardModel(db, nil)
	if cli.SubSecond {
		model = model.SubSecondDisplay(true)
	}
	return runDashboard(model)
}

type StartCmd struct {
	Expression []string `arg:"" help:"Duration or target time, e.g. 25, 1h30m, 17 30t"`
}

func (s *StartCmd) Run(cli *CLI) error {
	expr := strings.Join(s.Expression, " ")
	secs, err := timeexpr.Parse(expr, time.Now())
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", expr, err)
	}

	db, err := openDatabase(cli.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	settings := db.LoadSettings(ctx)
	settings.TotalSeconds = secs
	if err := db.SaveSettings(ctx, settings); err != nil {
		return err
	}
	model := tui.NewDashboardModel(db, nil).AutoStart()
	if cli.SubSecond {
		model = model.SubSecondDisplay(true)
	}
	return runDashboard(model)
}

type ReportCmd struct {
	Day string `help:"Day to report on (YYYY-MM-DD, default today)"`
}

func (r *ReportCmd) Run(cli *CLI) error {
	day, err := parseReportDay(r.Day, time.Now())
	if err != nil {
		return err
	}

	db, err := openDatabase(cli.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	path, err := tui.GeneratePDFReport(context.Background(), db, day)
	if err != nil {
		return err
	}
	fmt.Println("Report written to", path)
	return nil
}

func runDashboard(model tui.DashboardModel) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard requires an interactive terminal")
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// resolveDBPath falls back to the per-user data directory when no
// explicit path was given.
func resolveDBPath(flag string) string {
	if flag != "" {
		return flag
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

func openDatabase(path string) (*database.Database, error) {
	path = resolveDBPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return database.Open(context.Background(), path)
}

func parseReportDay(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD", value)
	}
	return day, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(config.AppName),
		kong.Description("A countdown, stopwatch and Pomodoro timer for the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": tui.AppVersion},
	)
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
