package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/traffbase/clickmap/database"
	"github.com/traffbase/clickmap/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", value, err)
	}
	return parsed
}

func TestMappingRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMappingRepository(db)
	ctx := context.Background()

	t10 := mustParse(t, "2026-01-14T10:00:00Z")
	t09 := mustParse(t, "2026-01-14T09:00:00Z")
	t11 := mustParse(t, "2026-01-14T11:00:00Z")

	// First observation inserts
	result, err := repo.Upsert(ctx, &models.MappingRecord{
		Source: "a.com", SubID: "x1", CountryTag: "US", EventTime: t10,
	})
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if !result.Inserted || result.Updated {
		t.Errorf("Expected insert, got %+v", result)
	}

	// Older observation is a no-op
	result, err = repo.Upsert(ctx, &models.MappingRecord{
		Source: "a.com", SubID: "stale", CountryTag: "US", EventTime: t09,
	})
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if result.Inserted || result.Updated {
		t.Errorf("Expected no-op for older event, got %+v", result)
	}

	rec, err := repo.GetBySource(ctx, "a.com")
	if err != nil {
		t.Fatalf("Failed to get mapping: %v", err)
	}
	if rec.SubID != "x1" {
		t.Errorf("Expected sub_id x1 after stale write, got %s", rec.SubID)
	}

	// Equal event time is also a no-op (strictly-later rule)
	result, err = repo.Upsert(ctx, &models.MappingRecord{
		Source: "a.com", SubID: "tied", CountryTag: "US", EventTime: t10,
	})
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if result.Inserted || result.Updated {
		t.Errorf("Expected no-op for equal event time, got %+v", result)
	}

	// Later observation overwrites
	result, err = repo.Upsert(ctx, &models.MappingRecord{
		Source: "a.com", SubID: "x2", CountryTag: "DE", EventTime: t11,
	})
	if err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if !result.Updated || result.Inserted {
		t.Errorf("Expected update for later event, got %+v", result)
	}

	rec, err = repo.GetBySource(ctx, "a.com")
	if err != nil {
		t.Fatalf("Failed to get mapping: %v", err)
	}
	if rec.SubID != "x2" || rec.CountryTag != "DE" {
		t.Errorf("Expected updated record, got %+v", rec)
	}
	if !rec.EventTime.Equal(t11) {
		t.Errorf("Expected event time %v, got %v", t11, rec.EventTime)
	}
}

func TestMappingRepository_UpsertIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMappingRepository(db)
	ctx := context.Background()

	batch := []*models.MappingRecord{
		{Source: "a.com", SubID: "x1", CountryTag: "US", EventTime: mustParse(t, "2026-01-14T10:00:00Z")},
		{Source: "b.com", SubID: "y1", CountryTag: "DE", EventTime: mustParse(t, "2026-01-14T09:00:00Z")},
	}

	inserted, updated := 0, 0
	for _, rec := range batch {
		result, err := repo.Upsert(ctx, rec)
		if err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
		if result.Inserted {
			inserted++
		}
		if result.Updated {
			updated++
		}
	}
	if inserted != 2 || updated != 0 {
		t.Errorf("First application: expected 2 inserts, got %d/%d", inserted, updated)
	}

	// Applying the same batch again changes nothing
	inserted, updated = 0, 0
	for _, rec := range batch {
		result, err := repo.Upsert(ctx, rec)
		if err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
		if result.Inserted {
			inserted++
		}
		if result.Updated {
			updated++
		}
	}
	if inserted != 0 || updated != 0 {
		t.Errorf("Second application: expected no changes, got %d inserted, %d updated", inserted, updated)
	}
}

func TestMappingRepository_UpsertWithConcurrentLogWrites(t *testing.T) {
	db := setupTestDB(t)
	mappings := NewMappingRepository(db)
	logs := NewResolutionLogRepository(db)
	ctx := context.Background()

	base := mustParse(t, "2026-01-14T00:00:00Z")
	if _, err := mappings.Upsert(ctx, &models.MappingRecord{
		Source: "a.com", SubID: "x0", CountryTag: "US", EventTime: base,
	}); err != nil {
		t.Fatalf("Failed to seed mapping: %v", err)
	}

	// Resolution traffic keeps committing log entries while sync updates the
	// same mapping row; every conditional write must queue, never error.
	done := make(chan struct{})
	writerErr := make(chan error, 1)
	go func() {
		defer close(writerErr)
		for {
			select {
			case <-done:
				return
			default:
			}
			entry := &models.ResolutionLogEntry{
				Method: "GET",
				URL:    "/r?source=a.com",
				Status: models.ResolutionStatusNotFound,
			}
			if err := logs.Create(ctx, entry); err != nil {
				writerErr <- err
				return
			}
		}
	}()

	for i := 1; i <= 50; i++ {
		result, err := mappings.Upsert(ctx, &models.MappingRecord{
			Source:     "a.com",
			SubID:      fmt.Sprintf("x%d", i),
			CountryTag: "US",
			EventTime:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Upsert %d failed under concurrent log writes: %v", i, err)
		}
		if !result.Updated {
			t.Fatalf("Upsert %d: expected update, got %+v", i, result)
		}
	}

	close(done)
	if err := <-writerErr; err != nil {
		t.Fatalf("Concurrent log write failed: %v", err)
	}

	rec, err := mappings.GetBySource(ctx, "a.com")
	if err != nil {
		t.Fatalf("Failed to get mapping: %v", err)
	}
	if rec.SubID != "x50" {
		t.Errorf("Expected final sub_id x50, got %s", rec.SubID)
	}
}

func TestMappingRepository_GetAllOrderedBySource(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMappingRepository(db)
	ctx := context.Background()

	eventTime := mustParse(t, "2026-01-14T10:00:00Z")
	for _, source := range []string{"c.com", "a.com", "b.com"} {
		if _, err := repo.Upsert(ctx, &models.MappingRecord{
			Source: source, SubID: "x", CountryTag: "US", EventTime: eventTime,
		}); err != nil {
			t.Fatalf("Failed to upsert %s: %v", source, err)
		}
	}

	records, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all mappings: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"a.com", "b.com", "c.com"} {
		if records[i].Source != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, records[i].Source)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}
}

func TestMappingRepository_GetBySourceMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMappingRepository(db)

	rec, err := repo.GetBySource(context.Background(), "nowhere.com")
	if err != nil {
		t.Fatalf("Missing source must not be an error, got: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil record for missing source, got %+v", rec)
	}
}

func TestResolutionLogRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResolutionLogRepository(db)
	ctx := context.Background()

	entry := &models.ResolutionLogEntry{
		Method:        "GET",
		URL:           "/api/tracker/sub_id?source=a.com",
		Source:        "a.com",
		Params:        `{"source":"a.com"}`,
		ResolvedSubID: "acc123",
		Status:        models.ResolutionStatusSuccess,
		IPAddress:     "10.0.0.1",
		UserAgent:     "curl/8.0",
		DurationMs:    3,
	}
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if entry.ID == 0 {
		t.Error("Expected entry ID to be set after creation")
	}

	missEntry := &models.ResolutionLogEntry{
		Method: "GET",
		URL:    "/api/tracker/sub_id?domain=b.com",
		Source: "b.com",
		Status: models.ResolutionStatusNotFound,
	}
	if err := repo.Create(ctx, missEntry); err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}

	// Unfiltered list returns both, newest first
	entries, total, err := repo.List(ctx, models.ResolutionLogFilter{Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if total != 2 || len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d (total %d)", len(entries), total)
	}

	// Source substring filter
	entries, total, err = repo.List(ctx, models.ResolutionLogFilter{Source: "a.c", Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list filtered entries: %v", err)
	}
	if total != 1 || entries[0].Source != "a.com" {
		t.Errorf("Source filter: expected single a.com entry, got total=%d", total)
	}

	// Found flag filter
	found := true
	entries, total, err = repo.List(ctx, models.ResolutionLogFilter{Found: &found, Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list found entries: %v", err)
	}
	if total != 1 || entries[0].Status != models.ResolutionStatusSuccess {
		t.Errorf("Found filter: expected single success entry, got total=%d", total)
	}

	notFound := false
	_, total, err = repo.List(ctx, models.ResolutionLogFilter{Found: &notFound, Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list not-found entries: %v", err)
	}
	if total != 1 {
		t.Errorf("Not-found filter: expected 1 entry, got %d", total)
	}

	// Point read
	got, err := repo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Failed to get entry by ID: %v", err)
	}
	if got == nil || got.ResolvedSubID != "acc123" {
		t.Errorf("Expected entry with sub id acc123, got %+v", got)
	}

	missing, err := repo.GetByID(ctx, 9999)
	if err != nil {
		t.Fatalf("Missing ID must not be an error, got: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing ID, got %+v", missing)
	}
}

func TestResolutionLogRepository_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResolutionLogRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 100; i++ {
		entry := &models.ResolutionLogEntry{
			Method:    "GET",
			URL:       fmt.Sprintf("/api/tracker/sub_id?n=%d", i),
			Status:    models.ResolutionStatusNotFound,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create entry %d: %v", i, err)
		}
	}

	entries, total, err := repo.List(ctx, models.ResolutionLogFilter{Limit: 10, Offset: 95})
	if err != nil {
		t.Fatalf("Failed to list page: %v", err)
	}
	if total != 100 {
		t.Errorf("Expected total 100, got %d", total)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 entries on the last partial page, got %d", len(entries))
	}

	pagination := models.NewPagination(total, 10, 95, len(entries))
	if pagination.HasMore {
		t.Error("Expected hasMore=false on the last page")
	}

	pagination = models.NewPagination(total, 10, 0, 10)
	if !pagination.HasMore {
		t.Error("Expected hasMore=true on the first page")
	}
}

func TestResolutionLogRepository_Purge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResolutionLogRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	ages := []time.Duration{
		45 * 24 * time.Hour, // purged
		31 * 24 * time.Hour, // purged
		29 * 24 * time.Hour, // kept
		time.Hour,           // kept
	}
	for i, age := range ages {
		entry := &models.ResolutionLogEntry{
			Method:    "GET",
			URL:       fmt.Sprintf("/r?n=%d", i),
			Status:    models.ResolutionStatusNotFound,
			CreatedAt: now.Add(-age),
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	deleted, err := repo.PurgeOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("Failed to purge: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 entries purged, got %d", deleted)
	}

	_, total, err := repo.List(ctx, models.ResolutionLogFilter{Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list after purge: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 entries remaining, got %d", total)
	}
}

func TestRequestLogRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestLogRepository(db)
	ctx := context.Background()

	entries := []*models.RequestLogEntry{
		{Method: "POST", URL: "/api/clicks/process", Path: "/api/clicks/process", StatusCode: 200, Username: "admin"},
		{Method: "GET", URL: "/api/clicks/data", Path: "/api/clicks/data", StatusCode: 200, Username: "admin"},
		{Method: "GET", URL: "/api/tracker/sub_id", Path: "/api/tracker/sub_id", StatusCode: 500},
	}
	for _, entry := range entries {
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	// Method filter
	_, total, err := repo.List(ctx, models.RequestLogFilter{Method: "GET", Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list by method: %v", err)
	}
	if total != 2 {
		t.Errorf("Method filter: expected 2 entries, got %d", total)
	}

	// Status code filter
	got, total, err := repo.List(ctx, models.RequestLogFilter{StatusCode: 500, Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list by status: %v", err)
	}
	if total != 1 || got[0].Path != "/api/tracker/sub_id" {
		t.Errorf("Status filter: expected the 500 entry, got total=%d", total)
	}

	// Path substring filter
	_, total, err = repo.List(ctx, models.RequestLogFilter{Path: "clicks", Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list by path: %v", err)
	}
	if total != 2 {
		t.Errorf("Path filter: expected 2 entries, got %d", total)
	}

	// Combined filters narrow further
	_, total, err = repo.List(ctx, models.RequestLogFilter{Method: "GET", Path: "clicks", Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list with combined filters: %v", err)
	}
	if total != 1 {
		t.Errorf("Combined filter: expected 1 entry, got %d", total)
	}
}

func TestRequestLogRepository_Purge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestLogRepository(db)
	ctx := context.Background()

	old := &models.RequestLogEntry{
		Method: "GET", URL: "/old", Path: "/old", StatusCode: 200,
		CreatedAt: time.Now().UTC().AddDate(0, 0, -40),
	}
	fresh := &models.RequestLogEntry{
		Method: "GET", URL: "/fresh", Path: "/fresh", StatusCode: 200,
	}
	if err := repo.Create(ctx, old); err != nil {
		t.Fatalf("Failed to create old entry: %v", err)
	}
	if err := repo.Create(ctx, fresh); err != nil {
		t.Fatalf("Failed to create fresh entry: %v", err)
	}

	deleted, err := repo.PurgeOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("Failed to purge: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 entry purged, got %d", deleted)
	}

	remaining, err := repo.GetByID(ctx, fresh.ID)
	if err != nil {
		t.Fatalf("Failed to get remaining entry: %v", err)
	}
	if remaining == nil {
		t.Error("Fresh entry must survive the purge")
	}
}

func TestSettingsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	// Missing key
	_, ok, err := repo.Get(ctx, "date_from")
	if err != nil {
		t.Fatalf("Failed to get setting: %v", err)
	}
	if ok {
		t.Error("Expected missing setting to report absent")
	}

	// Set and read back
	if err := repo.Set(ctx, "date_from", "2026-01-14"); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}
	value, ok, err := repo.Get(ctx, "date_from")
	if err != nil {
		t.Fatalf("Failed to get setting: %v", err)
	}
	if !ok || value != "2026-01-14" {
		t.Errorf("Expected 2026-01-14, got %q (present=%v)", value, ok)
	}

	// Overwrite
	if err := repo.Set(ctx, "date_from", "2026-02-01"); err != nil {
		t.Fatalf("Failed to overwrite setting: %v", err)
	}
	value, _, _ = repo.Get(ctx, "date_from")
	if value != "2026-02-01" {
		t.Errorf("Expected overwritten value, got %q", value)
	}

	// GetAll
	if err := repo.Set(ctx, "date_to", "2026-02-02"); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}
	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all settings: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 settings, got %d", len(all))
	}

	// Delete
	deleted, err := repo.Delete(ctx, "date_from")
	if err != nil {
		t.Fatalf("Failed to delete setting: %v", err)
	}
	if !deleted {
		t.Error("Expected delete to report a removed row")
	}
	deleted, _ = repo.Delete(ctx, "date_from")
	if deleted {
		t.Error("Expected second delete to report nothing removed")
	}
}
