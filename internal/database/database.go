// Package database centralises sqlx connection helpers for the MySQL
// store behind the submission pipelines.
//
// Public entry points:
//
//	Open(dsn)                          – helper with conservative pool sizes.
//	OpenWithOptions(dsn, maxOpen, maxIdle) – fine-grained control.
//	ConnectWithRetry(dsn, attempts, delay) – bounded startup retry loop.
//
// Open helpers Ping the database before returning so callers can fail
// fast during bootstrap.  The pool is created once at process start,
// injected into the repositories, and closed by the entry point on
// shutdown; request handlers never open connections themselves.
package database

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Open returns a *sqlx.DB with sane defaults: 15 max open, 5 idle, and a
// 30-minute connection lifetime.
func Open(dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(dsn, 15, 5)
}

// OpenWithOptions lets callers tune maxOpen and maxIdle per pool.
func OpenWithOptions(dsn string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ConnectWithRetry opens the pool with a fixed number of attempts and a
// fixed sleep between them.  No backoff, no jitter: the only transient
// failure this guards against is the database container coming up a few
// seconds after the web process.  The returned error carries the attempt
// count; the caller decides whether that is fatal.
func ConnectWithRetry(dsn string, attempts int, delay time.Duration) (*sqlx.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := Open(dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err
		zap.S().Warnw("database connection attempt failed",
			"attempt", attempt, "of", attempts, "err", err)
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("database connection failed after %d attempts: %w", attempts, lastErr)
}
