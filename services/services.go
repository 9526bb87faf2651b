package services

import (
	"github.com/traffbase/clickmap/repositories"
)

// Services holds all service instances
type Services struct {
	Sync     SyncService
	Resolve  ResolveService
	Logs     LogsService
	Settings SettingsService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, fetcher FeedFetcher) *Services {
	return &Services{
		Sync:     NewSyncService(fetcher, repos.Mapping),
		Resolve:  NewResolveService(repos.Mapping, repos.ResolutionLog),
		Logs:     NewLogsService(repos.ResolutionLog, repos.RequestLog),
		Settings: NewSettingsService(repos.Settings),
	}
}
