package db

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
)

// Setting keys used by the screening flow.
const (
	SettingResumeThreshold = "resume_threshold"
	SettingFinalThreshold  = "final_threshold"
	SettingTestDuration    = "test_duration_minutes"
	SettingAIEnabled       = "ai_analysis_enabled"
	SettingMaxFileSizeMB   = "max_file_size_mb"
)

// GetSetting retrieves one setting, or nil when the key is unknown.
func (db *DB) GetSetting(ctx context.Context, key string) (*SystemSetting, error) {
	var s SystemSetting
	err := db.pool.QueryRow(ctx,
		`SELECT id, setting_key, setting_value, description, updated_at
		 FROM system_settings WHERE setting_key = $1`,
		key,
	).Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &s, nil
}

// GetIntSetting reads a numeric setting, falling back to def when the key is
// missing or malformed.
func (db *DB) GetIntSetting(ctx context.Context, key string, def int) (int, error) {
	setting, err := db.GetSetting(ctx, key)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return def, nil
	}
	value, err := strconv.Atoi(setting.SettingValue)
	if err != nil {
		return def, nil
	}
	return value, nil
}

// parseBoolSetting interprets a stored setting value as a boolean, falling
// back to def for unrecognized values.
func parseBoolSetting(value string, def bool) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}

// GetBoolSetting reads a boolean setting, falling back to def when the key is
// missing or malformed.
func (db *DB) GetBoolSetting(ctx context.Context, key string, def bool) (bool, error) {
	setting, err := db.GetSetting(ctx, key)
	if err != nil {
		return def, err
	}
	if setting == nil {
		return def, nil
	}
	return parseBoolSetting(setting.SettingValue, def), nil
}

// ListSettings returns every setting row.
func (db *DB) ListSettings(ctx context.Context) ([]SystemSetting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, setting_key, setting_value, description, updated_at
		 FROM system_settings ORDER BY setting_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	settings := []SystemSetting{}
	for rows.Next() {
		var s SystemSetting
		if err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// UpsertSetting writes a setting value, creating the key when needed.
func (db *DB) UpsertSetting(ctx context.Context, key, value string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO system_settings (setting_key, setting_value)
		 VALUES ($1, $2)
		 ON CONFLICT (setting_key) DO UPDATE SET
		   setting_value = EXCLUDED.setting_value,
		   updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
