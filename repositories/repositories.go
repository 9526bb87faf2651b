package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Mapping       MappingRepository
	ResolutionLog ResolutionLogRepository
	RequestLog    RequestLogRepository
	Settings      SettingsRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Mapping:       NewMappingRepository(db),
		ResolutionLog: NewResolutionLogRepository(db),
		RequestLog:    NewRequestLogRepository(db),
		Settings:      NewSettingsRepository(db),
	}
}
