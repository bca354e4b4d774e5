package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/internal/desk/store"
)

type sessionsRepo struct {
	db *sql.DB
}

func (r *sessionsRepo) Get(ctx context.Context) (store.SessionRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT sealed_token, expires_at, user_id, display_name, email, role, enabled, updated_at
		FROM sessions WHERE id = 1`)

	var (
		rec       store.SessionRecord
		expiresAt int64
		enabled   int64
		updatedAt int64
		role      string
	)
	err := row.Scan(
		&rec.SealedToken, &expiresAt,
		&rec.Profile.ID, &rec.Profile.DisplayName, &rec.Profile.Email,
		&role, &enabled, &updatedAt,
	)
	if err != nil {
		return store.SessionRecord{}, mapNotFound(err)
	}

	if expiresAt > 0 {
		rec.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	}
	rec.Profile.Role = domain.Role(role)
	rec.Profile.Enabled = enabled != 0
	rec.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return rec, nil
}

func (r *sessionsRepo) Put(ctx context.Context, rec store.SessionRecord) error {
	var expiresAt int64
	if !rec.ExpiresAt.IsZero() {
		expiresAt = rec.ExpiresAt.Unix()
	}

	enabled := 0
	if rec.Profile.Enabled {
		enabled = 1
	}

	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, sealed_token, expires_at, user_id, display_name, email, role, enabled, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sealed_token = excluded.sealed_token,
			expires_at   = excluded.expires_at,
			user_id      = excluded.user_id,
			display_name = excluded.display_name,
			email        = excluded.email,
			role         = excluded.role,
			enabled      = excluded.enabled,
			updated_at   = excluded.updated_at`,
		rec.SealedToken, expiresAt,
		rec.Profile.ID, rec.Profile.DisplayName, rec.Profile.Email,
		string(rec.Profile.Role), enabled, updatedAt.Unix(),
	)
	return err
}

func (r *sessionsRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`)
	return err
}
