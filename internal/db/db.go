package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "modernc.org/sqlite"
)

const (
	pingMaxRetries = 4
	pingMaxElapsed = 10 * time.Second
)

// Open opens a SQLite database, sets recommended pragmas, and validates
// connectivity. The ping is retried with exponential backoff because the
// database file can sit on a volume that is mounted after the process starts.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = pingMaxElapsed
	err = backoff.Retry(func() error {
		if err := db.PingContext(ctx); err != nil {
			slog.Warn("sqlite ping failed", "path", dbPath, "error", err)
			return err
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, pingMaxRetries), ctx))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}

// dsn applies the pragmas on every pooled connection. Transactions take the
// write lock when they begin so read-modify-write cycles wait for each other.
func dsn(dbPath string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Set("_txlock", "immediate")

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + q.Encode()
}
