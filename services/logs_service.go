package services

import (
	"context"
	"fmt"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/repositories"
)

// defaultDaysToKeep applies when a cleanup request carries no retention age
const defaultDaysToKeep = 30

// LogsService exposes the audit trail: listing, point reads and retention
// cleanup for both log tables
type LogsService interface {
	ListResolutionLogs(ctx context.Context, filter models.ResolutionLogFilter) ([]models.ResolutionLogEntry, int, error)
	GetResolutionLog(ctx context.Context, id int64) (*models.ResolutionLogEntry, error)
	CleanupResolutionLogs(ctx context.Context, daysToKeep int) (int64, error)

	ListRequestLogs(ctx context.Context, filter models.RequestLogFilter) ([]models.RequestLogEntry, int, error)
	GetRequestLog(ctx context.Context, id int64) (*models.RequestLogEntry, error)
	CleanupRequestLogs(ctx context.Context, daysToKeep int) (int64, error)
}

type logsService struct {
	resolutionRepo repositories.ResolutionLogRepository
	requestRepo    repositories.RequestLogRepository
}

// NewLogsService creates a new logs service
func NewLogsService(resolutionRepo repositories.ResolutionLogRepository, requestRepo repositories.RequestLogRepository) LogsService {
	return &logsService{
		resolutionRepo: resolutionRepo,
		requestRepo:    requestRepo,
	}
}

// ListResolutionLogs returns a page of resolution log entries and the
// filtered total
func (s *logsService) ListResolutionLogs(ctx context.Context, filter models.ResolutionLogFilter) ([]models.ResolutionLogEntry, int, error) {
	filter.Limit = models.ClampLimit(filter.Limit)
	filter.Offset = models.ClampOffset(filter.Offset)
	return s.resolutionRepo.List(ctx, filter)
}

// GetResolutionLog returns one resolution log entry by ID
func (s *logsService) GetResolutionLog(ctx context.Context, id int64) (*models.ResolutionLogEntry, error) {
	if id <= 0 {
		return nil, NewValidationError("invalid log ID: %d", id)
	}
	return s.resolutionRepo.GetByID(ctx, id)
}

// CleanupResolutionLogs removes resolution log entries older than daysToKeep
func (s *logsService) CleanupResolutionLogs(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep <= 0 {
		daysToKeep = defaultDaysToKeep
	}

	deleted, err := s.resolutionRepo.PurgeOlderThan(ctx, daysToKeep)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up resolution logs: %w", err)
	}
	return deleted, nil
}

// ListRequestLogs returns a page of request log entries and the filtered total
func (s *logsService) ListRequestLogs(ctx context.Context, filter models.RequestLogFilter) ([]models.RequestLogEntry, int, error) {
	filter.Limit = models.ClampLimit(filter.Limit)
	filter.Offset = models.ClampOffset(filter.Offset)
	return s.requestRepo.List(ctx, filter)
}

// GetRequestLog returns one request log entry by ID
func (s *logsService) GetRequestLog(ctx context.Context, id int64) (*models.RequestLogEntry, error) {
	if id <= 0 {
		return nil, NewValidationError("invalid log ID: %d", id)
	}
	return s.requestRepo.GetByID(ctx, id)
}

// CleanupRequestLogs removes request log entries older than daysToKeep
func (s *logsService) CleanupRequestLogs(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep <= 0 {
		daysToKeep = defaultDaysToKeep
	}

	deleted, err := s.requestRepo.PurgeOlderThan(ctx, daysToKeep)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up request logs: %w", err)
	}
	return deleted, nil
}
