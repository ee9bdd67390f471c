package database

import (
	"context"
	"log"
	"strconv"

	"tempo/internal/action"
	"tempo/internal/config"
	"tempo/internal/util"
)

// Setting keys.
const (
	KeyTotalSeconds  = "timer_total_seconds"
	KeyPhases        = "pomodoro_phases"
	KeyTargetCycles  = "pomodoro_target_cycles"
	KeyTimeoutAction = "timeout_action"
	KeyActionPayload = "timeout_action_payload"
	KeySubSecond     = "sub_second_display"
	KeySound         = "sound_enabled"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapSettingsErr("set "+key, err)
}

// Settings is the typed view over the settings table.
type Settings struct {
	TotalSeconds int
	Phases       []int
	TargetCycles int
	Action       action.Action
	SubSecond    bool
	SoundEnabled bool
}

func DefaultSettings() Settings {
	return Settings{
		TotalSeconds: int(config.DefaultCountdown.Seconds()),
		Phases: []int{
			int(config.DefaultWorkPhase.Seconds()),
			int(config.DefaultShortBreak.Seconds()),
		},
		TargetCycles: config.DefaultCycles,
		Action:       action.Action{Kind: action.ShowMessage},
		SoundEnabled: true,
	}
}

// LoadSettings reads the typed settings. Destructive timeout actions
// are rewritten to MESSAGE here: this is the single boundary where
// persisted (untrusted) configuration enters the process.
func (d *Database) LoadSettings(ctx context.Context) Settings {
	s := DefaultSettings()
	if v, ok := d.GetSetting(ctx, KeyTotalSeconds); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.TotalSeconds = n
		}
	}
	if v, ok := d.GetSetting(ctx, KeyPhases); ok {
		if phases := util.JSONToPhases(v); len(phases) > 0 {
			s.Phases = phases
		}
	}
	if v, ok := d.GetSetting(ctx, KeyTargetCycles); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.TargetCycles = n
		}
	}
	if v, ok := d.GetSetting(ctx, KeyTimeoutAction); ok {
		kind, err := action.ParseKind(v)
		if err != nil {
			log.Printf("settings: %v, using MESSAGE", err)
		}
		payload, _ := d.GetSetting(ctx, KeyActionPayload)
		loaded := action.Action{Kind: kind, Payload: payload}
		safe, rewritten := action.Downgrade(loaded)
		if rewritten {
			log.Printf("settings: destructive timeout action %q downgraded to %s", v, safe.Kind)
		}
		s.Action = safe
	}
	if v, ok := d.GetSetting(ctx, KeySubSecond); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.SubSecond = util.IntToBool(n)
		}
	}
	if v, ok := d.GetSetting(ctx, KeySound); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.SoundEnabled = util.IntToBool(n)
		}
	}
	return s
}

// SaveSettings writes the typed settings back. The downgrade runs here
// too, so a destructive action can never reach disk.
func (d *Database) SaveSettings(ctx context.Context, s Settings) error {
	safe, rewritten := action.Downgrade(s.Action)
	if rewritten {
		log.Printf("settings: refusing to persist destructive timeout action, storing %s", safe.Kind)
	}
	writes := map[string]string{
		KeyTotalSeconds:  strconv.Itoa(s.TotalSeconds),
		KeyPhases:        util.PhasesToJSON(s.Phases),
		KeyTargetCycles:  strconv.Itoa(s.TargetCycles),
		KeyTimeoutAction: safe.Kind.String(),
		KeyActionPayload: safe.Payload,
		KeySubSecond:     boolSetting(s.SubSecond),
		KeySound:         boolSetting(s.SoundEnabled),
	}
	for key, value := range writes {
		if err := d.SetSetting(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func boolSetting(b bool) string {
	return strconv.Itoa(util.BoolToInt(b))
}
