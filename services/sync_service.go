package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/traffbase/clickmap/feed"
	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/repositories"
)

// FeedFetcher drains the external feed for a date window
type FeedFetcher interface {
	FetchAll(ctx context.Context, from, to string) (*feed.Result, error)
}

// SyncService interface defines the ingestion pipeline
type SyncService interface {
	ProcessWindow(ctx context.Context, form *models.SyncForm) (*models.SyncResult, error)
	GetAllMappings(ctx context.Context) ([]models.MappingRecord, error)
}

// syncService implements SyncService
type syncService struct {
	fetcher     FeedFetcher
	mappingRepo repositories.MappingRepository
}

// NewSyncService creates a new sync service
func NewSyncService(fetcher FeedFetcher, mappingRepo repositories.MappingRepository) SyncService {
	return &syncService{
		fetcher:     fetcher,
		mappingRepo: mappingRepo,
	}
}

// SourceGroup is the rows observed for one source within a batch, in
// first-seen order
type SourceGroup struct {
	Source  string
	Records []models.RawClick
}

// GroupBySource partitions a batch by source, preserving the order sources
// were first encountered in
func GroupBySource(rows []models.RawClick) []SourceGroup {
	index := make(map[string]int)
	var groups []SourceGroup

	for _, row := range rows {
		i, ok := index[row.Source]
		if !ok {
			i = len(groups)
			index[row.Source] = i
			groups = append(groups, SourceGroup{Source: row.Source})
		}
		groups[i].Records = append(groups[i].Records, row)
	}

	return groups
}

// LatestRecord reduces a group to its winning record: the candidate is
// replaced only when the next record's event time is strictly later, so
// equal event times keep the record encountered first.
func LatestRecord(records []models.RawClick) (models.RawClick, bool) {
	if len(records) == 0 {
		return models.RawClick{}, false
	}

	winner := records[0]
	for _, rec := range records[1:] {
		if rec.EventTime.After(winner.EventTime) {
			winner = rec
		}
	}

	return winner, true
}

// ProcessWindow runs one full ingestion: fetch the window, reduce each
// source to its winning record, and apply the winners to the mapping store.
// An upstream failure aborts the run with nothing committed.
func (s *syncService) ProcessWindow(ctx context.Context, form *models.SyncForm) (*models.SyncResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, NewValidationError("validation failed: %s", strings.Join(errs, ", "))
	}

	runID := uuid.NewString()
	log.Printf("[sync %s] fetching window %s .. %s", runID, form.From, form.To)

	batch, err := s.fetcher.FetchAll(ctx, form.From, form.To)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	log.Printf("[sync %s] received %d rows (upstream total %d)", runID, len(batch.Rows), batch.Total)

	groups := GroupBySource(batch.Rows)

	result := &models.SyncResult{
		RunID:             runID,
		TotalFromUpstream: batch.Total,
		Processed:         len(batch.Rows),
		SourcesProcessed:  len(groups),
	}

	for _, group := range groups {
		winner, ok := LatestRecord(group.Records)
		if !ok {
			continue
		}

		upsert, err := s.mappingRepo.Upsert(ctx, &models.MappingRecord{
			Source:     winner.Source,
			SubID:      winner.SubID,
			CountryTag: winner.CountryTag,
			EventTime:  winner.EventTime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to apply winner for source %s: %w", winner.Source, err)
		}

		if upsert.Inserted {
			result.Inserted++
		}
		if upsert.Updated {
			result.Updated++
		}
	}

	log.Printf("[sync %s] processed %d sources: %d inserted, %d updated",
		runID, result.SourcesProcessed, result.Inserted, result.Updated)

	return result, nil
}

// GetAllMappings returns the current mapping table ordered by source
func (s *syncService) GetAllMappings(ctx context.Context) ([]models.MappingRecord, error) {
	return s.mappingRepo.GetAll(ctx)
}
