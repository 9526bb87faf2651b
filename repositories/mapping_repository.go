package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/traffbase/clickmap/models"
)

// UpsertResult reports what a conditional mapping write did
type UpsertResult struct {
	Inserted bool
	Updated  bool
}

// MappingRepository defines mapping store database operations
type MappingRepository interface {
	GetBySource(ctx context.Context, source string) (*models.MappingRecord, error)
	GetAll(ctx context.Context) ([]models.MappingRecord, error)
	Upsert(ctx context.Context, rec *models.MappingRecord) (UpsertResult, error)
	Count(ctx context.Context) (int, error)
}

// mappingRepository implements MappingRepository against sqlite
type mappingRepository struct {
	db *sql.DB
}

// NewMappingRepository creates a new mapping repository
func NewMappingRepository(db *sql.DB) MappingRepository {
	return &mappingRepository{db: db}
}

// GetBySource retrieves the mapping record for a source, or nil when no
// record exists. A missing record is a normal outcome, not an error.
func (r *mappingRepository) GetBySource(ctx context.Context, source string) (*models.MappingRecord, error) {
	query := `
		SELECT id, source, sub_id, country_tag, event_time, created_at, updated_at
		FROM clicks_mapping
		WHERE source = ?
	`

	var rec models.MappingRecord
	err := r.db.QueryRowContext(ctx, query, source).Scan(
		&rec.ID,
		&rec.Source,
		&rec.SubID,
		&rec.CountryTag,
		&rec.EventTime,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mapping for source %s: %w", source, err)
	}

	return &rec, nil
}

// GetAll retrieves every mapping record ordered by source
func (r *mappingRepository) GetAll(ctx context.Context) ([]models.MappingRecord, error) {
	query := `
		SELECT id, source, sub_id, country_tag, event_time, created_at, updated_at
		FROM clicks_mapping
		ORDER BY source ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}
	defer rows.Close()

	var records []models.MappingRecord
	for rows.Next() {
		var rec models.MappingRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Source,
			&rec.SubID,
			&rec.CountryTag,
			&rec.EventTime,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mappings: %w", err)
	}

	return records, nil
}

// Upsert applies a winning record to the store. The read and the conditional
// write run inside one immediate transaction (database.Open sets
// _txlock=immediate), so the write lock is held before the read: concurrent
// writers queue behind it instead of invalidating the snapshot between the
// two steps. An existing record is overwritten only when the incoming event
// time is strictly later; otherwise the row is left untouched and neither
// counter is set.
func (r *mappingRepository) Upsert(ctx context.Context, rec *models.MappingRecord) (UpsertResult, error) {
	var result UpsertResult

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin upsert transaction: %w", err)
	}
	defer tx.Rollback()

	var existingEventTime time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT event_time FROM clicks_mapping WHERE source = ?",
		rec.Source,
	).Scan(&existingEventTime)

	now := time.Now().UTC()

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO clicks_mapping (source, sub_id, country_tag, event_time, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, rec.Source, rec.SubID, rec.CountryTag, rec.EventTime.UTC(), now, now)
		if err != nil {
			return result, fmt.Errorf("failed to insert mapping for source %s: %w", rec.Source, err)
		}
		result.Inserted = true

	case err != nil:
		return result, fmt.Errorf("failed to read mapping for source %s: %w", rec.Source, err)

	case rec.EventTime.After(existingEventTime):
		_, err = tx.ExecContext(ctx, `
			UPDATE clicks_mapping
			SET sub_id = ?, country_tag = ?, event_time = ?, updated_at = ?
			WHERE source = ?
		`, rec.SubID, rec.CountryTag, rec.EventTime.UTC(), now, rec.Source)
		if err != nil {
			return result, fmt.Errorf("failed to update mapping for source %s: %w", rec.Source, err)
		}
		result.Updated = true
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit upsert for source %s: %w", rec.Source, err)
	}

	return result, nil
}

// Count returns the total number of mapping records
func (r *mappingRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM clicks_mapping").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count mappings: %w", err)
	}
	return count, nil
}
