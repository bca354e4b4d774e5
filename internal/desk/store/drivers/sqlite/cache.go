package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/store"
)

type cacheRepo struct {
	db *sql.DB
}

func (r *cacheRepo) Get(ctx context.Context, key string) (store.CachedList, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT key, payload, fetched_at FROM cache WHERE key = ?`, key)

	var (
		rec       store.CachedList
		fetchedAt int64
	)
	if err := row.Scan(&rec.Key, &rec.Payload, &fetchedAt); err != nil {
		return store.CachedList{}, mapNotFound(err)
	}

	rec.FetchedAt = time.Unix(fetchedAt, 0).UTC()
	return rec, nil
}

func (r *cacheRepo) Put(ctx context.Context, key string, payload []byte, fetchedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cache (key, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload    = excluded.payload,
			fetched_at = excluded.fetched_at`,
		key, payload, fetchedAt.Unix(),
	)
	return err
}

func (r *cacheRepo) Purge(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cache`)
	return err
}
