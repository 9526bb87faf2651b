package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/repositories"
)

// Defaults applied for settings that were never written
const (
	defaultAutoRefreshInterval = 60
	defaultDateFrom            = "2026-01-14"
	defaultDateTo              = "2026-01-15"
)

// SettingsService exposes the operator settings store
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, form *models.SettingsForm) (*models.Settings, error)
}

type settingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repositories.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// GetSettings returns the stored settings with defaults filled in
func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settingsFromMap(stored), nil
}

// UpdateSettings persists the provided fields and returns the full settings
// view afterwards. Absent fields are left untouched.
func (s *settingsService) UpdateSettings(ctx context.Context, form *models.SettingsForm) (*models.Settings, error) {
	if form.AutoRefreshEnabled != nil {
		if err := s.repo.Set(ctx, models.SettingAutoRefreshEnabled, strconv.FormatBool(*form.AutoRefreshEnabled)); err != nil {
			return nil, err
		}
	}

	if form.AutoRefreshInterval != nil {
		if err := s.repo.Set(ctx, models.SettingAutoRefreshInterval, strconv.Itoa(*form.AutoRefreshInterval)); err != nil {
			return nil, err
		}
	}

	if form.DateFrom != nil {
		if err := s.repo.Set(ctx, models.SettingDateFrom, *form.DateFrom); err != nil {
			return nil, err
		}
	}

	if form.DateTo != nil {
		if err := s.repo.Set(ctx, models.SettingDateTo, *form.DateTo); err != nil {
			return nil, err
		}
	}

	return s.GetSettings(ctx)
}

func settingsFromMap(stored map[string]string) *models.Settings {
	settings := &models.Settings{
		AutoRefreshEnabled:  stored[models.SettingAutoRefreshEnabled] == "true",
		AutoRefreshInterval: defaultAutoRefreshInterval,
		DateFrom:            defaultDateFrom,
		DateTo:              defaultDateTo,
	}

	if raw, ok := stored[models.SettingAutoRefreshInterval]; ok {
		if interval, err := strconv.Atoi(raw); err == nil {
			settings.AutoRefreshInterval = interval
		}
	}
	if value, ok := stored[models.SettingDateFrom]; ok {
		settings.DateFrom = value
	}
	if value, ok := stored[models.SettingDateTo]; ok {
		settings.DateTo = value
	}

	return settings
}
