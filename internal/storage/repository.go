package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CacheRepository persists memoized calculation results in Postgres.
// It satisfies cache.Cache, so the service layer cannot tell it from the
// in-memory store.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type cacheRepository struct {
	db *sql.DB
}

func NewCacheRepository(db *sql.DB) CacheRepository {
	return &cacheRepository{db: db}
}

// Get returns the payload for key if present and not yet expired.
func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload
		FROM calc_cache
		WHERE cache_key = $1
		  AND (expires_at IS NULL OR expires_at > NOW())
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", key, err)
	}
	return payload, true, nil
}

// Set upserts key. The payload must be valid JSON (the column is JSONB).
// A ttl <= 0 stores the row without expiry.
func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calc_cache (cache_key, payload, expires_at)
		VALUES ($1, $2, CASE WHEN $3::bigint > 0 THEN NOW() + ($3::bigint * INTERVAL '1 millisecond') END)
		ON CONFLICT (cache_key)
		DO UPDATE SET payload = EXCLUDED.payload,
					  expires_at = EXCLUDED.expires_at,
					  created_at = NOW()
	`, key, string(value), ttl.Milliseconds())
	if err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// DeleteExpired removes rows whose expiry has passed and reports how many.
func (r *cacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calc_cache WHERE expires_at IS NOT NULL AND expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cache purge: %w", err)
	}
	return n, nil
}
