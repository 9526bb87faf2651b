package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite database at the given path, applies pending
// migrations and returns the connection. The caller owns the handle and
// passes it down to the repositories; there is no package-level state.
//
// Transactions begin IMMEDIATE so an explicit BeginTx takes the write lock
// up-front. A deferred transaction would snapshot on its first read and then
// fail with SQLITE_BUSY_SNAPSHOT if any other write (a log insert, say)
// committed before its own write. The busy timeout makes queued writers wait
// for the lock instead of erroring.
func Open(dataSourceName string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dataSourceName, "?") {
		sep = "&"
	}
	dsn := dataSourceName + sep + "_txlock=immediate&_busy_timeout=5000"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// WAL keeps resolution reads from blocking behind sync writes.
	if _, err = db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
