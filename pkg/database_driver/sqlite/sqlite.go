package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/sirupsen/logrus"
)

const (
	// MemoryPath opens a private in-memory database
	MemoryPath = ":memory:"

	dirPermissions    = 0750
	msPerSecond       = 1000
	connectionTimeout = 5 * time.Second
)

// Open func - Opens (creating if needed) the SQLite database at path.
// The pool is limited to a single connection: SQLite has one writer, and an
// in-memory database only exists on the connection that created it.
func Open(path string, busyTimeout int) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty database path")
	}

	connStr := MemoryPath
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		connStr = fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL",
			path,
			busyTimeout*msPerSecond,
		)
	}

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	// an idle in-memory connection must not be recycled
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	logrus.Info("SQLite database opened: ", path)
	return db, nil
}

// Close func
func Close(db *sql.DB) {
	if err := db.Close(); err != nil {
		logrus.Error(err)
		return
	}
	logrus.Println("Connected with sqlite has closed")
}
