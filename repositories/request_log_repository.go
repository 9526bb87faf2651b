package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/traffbase/clickmap/models"
)

// RequestLogRepository handles the append-only HTTP request log
type RequestLogRepository interface {
	Create(ctx context.Context, entry *models.RequestLogEntry) error
	List(ctx context.Context, filter models.RequestLogFilter) ([]models.RequestLogEntry, int, error)
	GetByID(ctx context.Context, id int64) (*models.RequestLogEntry, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

type requestLogRepository struct {
	db *sql.DB
}

// NewRequestLogRepository creates a new request log repository
func NewRequestLogRepository(db *sql.DB) RequestLogRepository {
	return &requestLogRepository{db: db}
}

// Create appends a request log entry
func (r *requestLogRepository) Create(ctx context.Context, entry *models.RequestLogEntry) error {
	query := `
		INSERT INTO request_logs (
			method, url, path, headers, body,
			status_code, response, response_time, ip_address, user_agent,
			username, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.Method,
		entry.URL,
		entry.Path,
		nullableString(entry.Headers),
		nullableString(entry.Body),
		entry.StatusCode,
		nullableString(entry.Response),
		entry.ResponseTime,
		entry.IPAddress,
		entry.UserAgent,
		entry.Username,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create request log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// List retrieves request log entries matching the filter, newest first,
// along with the total count matching the same filter
func (r *requestLogRepository) List(ctx context.Context, filter models.RequestLogFilter) ([]models.RequestLogEntry, int, error) {
	where, args := requestLogWhere(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM request_logs" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count request logs: %w", err)
	}

	query := `
		SELECT id, method, url, path, headers, body,
		       status_code, response, response_time, ip_address, user_agent,
		       username, created_at
		FROM request_logs` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query request logs: %w", err)
	}
	defer rows.Close()

	var entries []models.RequestLogEntry
	for rows.Next() {
		entry, err := scanRequestLog(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan request log: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating request logs: %w", err)
	}

	return entries, total, nil
}

// GetByID retrieves a single request log entry, or nil when none exists
func (r *requestLogRepository) GetByID(ctx context.Context, id int64) (*models.RequestLogEntry, error) {
	query := `
		SELECT id, method, url, path, headers, body,
		       status_code, response, response_time, ip_address, user_agent,
		       username, created_at
		FROM request_logs
		WHERE id = ?
	`

	entry, err := scanRequestLog(func(dest ...interface{}) error {
		return r.db.QueryRowContext(ctx, query, id).Scan(dest...)
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request log %d: %w", id, err)
	}

	return entry, nil
}

// PurgeOlderThan deletes entries strictly older than the given age in days
// and returns the number removed
func (r *requestLogRepository) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	result, err := r.db.ExecContext(ctx,
		"DELETE FROM request_logs WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge request logs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purge count: %w", err)
	}

	return deleted, nil
}

func requestLogWhere(filter models.RequestLogFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.Method != "" {
		where += " AND method = ?"
		args = append(args, filter.Method)
	}

	if filter.StatusCode != 0 {
		where += " AND status_code = ?"
		args = append(args, filter.StatusCode)
	}

	if filter.Path != "" {
		where += " AND path LIKE ?"
		args = append(args, "%"+filter.Path+"%")
	}

	return where, args
}

func scanRequestLog(scan func(dest ...interface{}) error) (*models.RequestLogEntry, error) {
	var entry models.RequestLogEntry
	var headers, body, response, username sql.NullString

	err := scan(
		&entry.ID,
		&entry.Method,
		&entry.URL,
		&entry.Path,
		&headers,
		&body,
		&entry.StatusCode,
		&response,
		&entry.ResponseTime,
		&entry.IPAddress,
		&entry.UserAgent,
		&username,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Headers = headers.String
	entry.Body = body.String
	entry.Response = response.String
	entry.Username = username.String

	return &entry, nil
}
