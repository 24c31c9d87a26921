package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/holidaypulse/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const (
	pingTimeout  = 5 * time.Second
	maxOpenConns = 10
	maxIdleConns = 5
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// postgresOpener is an indirection used by openBackend; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres

// InitPostgres opens the Postgres database that backs the persistent cache.
//
// Behavior:
//   - Uses cfg.Postgres.URL when set, otherwise builds the DSN from the parts.
//   - Caps the pool; cache traffic is short key lookups.
//   - Pings with a timeout and closes the handle if the ping fails.
//
// Returns:
//   - *sql.DB: an open database connection pool (safe for concurrent use).
//   - error: if opening or pinging the database fails.
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	dsn := cfg.Postgres.URL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Postgres.User,
			cfg.Postgres.Password,
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.DBName,
			cfg.Postgres.SSLMode,
		)
	}

	// Initialize database handle (does not establish a real connection yet)
	db, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}
