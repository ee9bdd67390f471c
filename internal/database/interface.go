package database

import (
	"context"
	"time"

	"tempo/internal/models"
)

// SettingsRepository defines the configuration get/set contract.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	LoadSettings(ctx context.Context) Settings
	SaveSettings(ctx context.Context, s Settings) error
}

// PresetRepository defines preset operations.
type PresetRepository interface {
	CreatePreset(ctx context.Context, p models.Preset) (int64, error)
	GetPresets(ctx context.Context) ([]models.Preset, error)
	DeletePreset(ctx context.Context, id int64) error
}

// SessionRepository defines session-history operations.
type SessionRepository interface {
	StartSession(ctx context.Context, mode string, totalSeconds int) (int64, error)
	FinishSession(ctx context.Context, id int64, elapsedSeconds, cycles int, completed bool) error
	GetSessionsForDay(ctx context.Context, day time.Time) ([]models.Session, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	PresetRepository
	SessionRepository
}

var _ Repository = (*Database)(nil)
