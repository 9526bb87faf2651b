package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SettingsRepository handles the key-value settings store
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetAll(ctx context.Context) (map[string]string, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the value for a key; the second return reports existence
func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT setting_value FROM user_settings WHERE setting_key = ?", key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores a value for a key, overwriting any existing value
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO user_settings (setting_key, setting_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	return nil
}

// GetAll returns every stored setting as a key-value map
func (r *settingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT setting_key, setting_value FROM user_settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

// Delete removes a setting; returns true when a row was deleted
func (r *settingsRepository) Delete(ctx context.Context, key string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM user_settings WHERE setting_key = ?", key)
	if err != nil {
		return false, fmt.Errorf("failed to delete setting %s: %w", key, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}
