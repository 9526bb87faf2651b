package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/traffbase/clickmap/models"
)

// ResolutionLogRepository handles the append-only resolution log
type ResolutionLogRepository interface {
	Create(ctx context.Context, entry *models.ResolutionLogEntry) error
	List(ctx context.Context, filter models.ResolutionLogFilter) ([]models.ResolutionLogEntry, int, error)
	GetByID(ctx context.Context, id int64) (*models.ResolutionLogEntry, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

type resolutionLogRepository struct {
	db *sql.DB
}

// NewResolutionLogRepository creates a new resolution log repository
func NewResolutionLogRepository(db *sql.DB) ResolutionLogRepository {
	return &resolutionLogRepository{db: db}
}

// Create appends a resolution log entry
func (r *resolutionLogRepository) Create(ctx context.Context, entry *models.ResolutionLogEntry) error {
	query := `
		INSERT INTO resolution_logs (
			method, url, source, params, resolved_sub_id,
			status, redirect_url, error_message, ip_address, user_agent,
			duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.Method,
		entry.URL,
		nullableString(entry.Source),
		entry.Params,
		nullableString(entry.ResolvedSubID),
		entry.Status,
		nullableString(entry.RedirectURL),
		nullableString(entry.ErrorMessage),
		entry.IPAddress,
		entry.UserAgent,
		entry.DurationMs,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create resolution log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// List retrieves resolution log entries matching the filter, newest first,
// along with the total count matching the same filter
func (r *resolutionLogRepository) List(ctx context.Context, filter models.ResolutionLogFilter) ([]models.ResolutionLogEntry, int, error) {
	where, args := resolutionLogWhere(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM resolution_logs" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count resolution logs: %w", err)
	}

	query := `
		SELECT id, method, url, source, params, resolved_sub_id,
		       status, redirect_url, error_message, ip_address, user_agent,
		       duration_ms, created_at
		FROM resolution_logs` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query resolution logs: %w", err)
	}
	defer rows.Close()

	var entries []models.ResolutionLogEntry
	for rows.Next() {
		entry, err := scanResolutionLog(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan resolution log: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating resolution logs: %w", err)
	}

	return entries, total, nil
}

// GetByID retrieves a single resolution log entry, or nil when none exists
func (r *resolutionLogRepository) GetByID(ctx context.Context, id int64) (*models.ResolutionLogEntry, error) {
	query := `
		SELECT id, method, url, source, params, resolved_sub_id,
		       status, redirect_url, error_message, ip_address, user_agent,
		       duration_ms, created_at
		FROM resolution_logs
		WHERE id = ?
	`

	entry, err := scanResolutionLog(func(dest ...interface{}) error {
		return r.db.QueryRowContext(ctx, query, id).Scan(dest...)
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resolution log %d: %w", id, err)
	}

	return entry, nil
}

// PurgeOlderThan deletes entries strictly older than the given age in days
// and returns the number removed
func (r *resolutionLogRepository) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	result, err := r.db.ExecContext(ctx,
		"DELETE FROM resolution_logs WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge resolution logs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purge count: %w", err)
	}

	return deleted, nil
}

func resolutionLogWhere(filter models.ResolutionLogFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.Source != "" {
		where += " AND source LIKE ?"
		args = append(args, "%"+filter.Source+"%")
	}

	if filter.Found != nil {
		if *filter.Found {
			where += " AND status = ?"
		} else {
			where += " AND status != ?"
		}
		args = append(args, models.ResolutionStatusSuccess)
	}

	return where, args
}

func scanResolutionLog(scan func(dest ...interface{}) error) (*models.ResolutionLogEntry, error) {
	var entry models.ResolutionLogEntry
	var source, resolvedSubID, redirectURL, errorMessage sql.NullString

	err := scan(
		&entry.ID,
		&entry.Method,
		&entry.URL,
		&source,
		&entry.Params,
		&resolvedSubID,
		&entry.Status,
		&redirectURL,
		&errorMessage,
		&entry.IPAddress,
		&entry.UserAgent,
		&entry.DurationMs,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Source = source.String
	entry.ResolvedSubID = resolvedSubID.String
	entry.RedirectURL = redirectURL.String
	entry.ErrorMessage = errorMessage.String

	return &entry, nil
}

// nullableString maps "" onto NULL so optional columns stay NULL in storage
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
