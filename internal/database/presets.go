package database

import (
	"context"

	"tempo/internal/action"
	"tempo/internal/models"
	"tempo/internal/util"
)

// CreatePreset stores a named timer configuration. The timeout action
// passes through the same downgrade as the settings boundary.
func (d *Database) CreatePreset(ctx context.Context, p models.Preset) (int64, error) {
	safe, _ := action.Downgrade(action.Action{Kind: presetKind(p), Payload: util.Deref(p.ActionPayload)})
	res, err := d.DB.ExecContext(ctx,
		`INSERT INTO presets (name, total_seconds, phases, target_cycles, timeout_action, action_payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.TotalSeconds, util.PhasesToJSON(p.Phases), p.TargetCycles,
		safe.Kind.String(), nullableString(safe.Payload))
	if err != nil {
		return 0, wrapPresetErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapPresetErr("create", 0, err)
}

func presetKind(p models.Preset) action.Kind {
	kind, err := action.ParseKind(p.TimeoutAction)
	if err != nil {
		return action.ShowMessage
	}
	return kind
}

// GetPresets returns all presets, most recently created first.
func (d *Database) GetPresets(ctx context.Context) ([]models.Preset, error) {
	rows, err := d.DB.QueryContext(ctx,
		`SELECT id, name, total_seconds, phases, target_cycles, timeout_action, action_payload, created_at
		 FROM presets ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, wrapPresetErr("list", 0, err)
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		var p models.Preset
		var phases string
		if err := rows.Scan(&p.ID, &p.Name, &p.TotalSeconds, &phases, &p.TargetCycles,
			&p.TimeoutAction, &p.ActionPayload, &p.CreatedAt); err != nil {
			return nil, wrapPresetErr("list", 0, err)
		}
		p.Phases = util.JSONToPhases(phases)
		presets = append(presets, p)
	}
	return presets, wrapPresetErr("list", 0, rows.Err())
}

// DeletePreset removes a preset by ID.
func (d *Database) DeletePreset(ctx context.Context, id int64) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM presets WHERE id = ?", id)
	return wrapPresetErr("delete", id, err)
}
