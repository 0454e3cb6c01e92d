package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PostgresSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresSessionRepository(db *sqlx.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Record(ctx context.Context, ownerID, date string) (*domain.PrayerSession, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO prayer_sessions (
			id, owner_id, session_date, prayer_count, completed, created_at, updated_at
		) VALUES ($1, $2, $3, 1, TRUE, $4, $4)
		ON CONFLICT (owner_id, session_date) DO UPDATE SET
			prayer_count = prayer_sessions.prayer_count + 1,
			completed = TRUE,
			updated_at = EXCLUDED.updated_at
		RETURNING id, owner_id, session_date, prayer_count, completed, created_at, updated_at`

	var session domain.PrayerSession
	err := r.db.GetContext(ctx, &session, query, uuid.NewString(), ownerID, date, now)
	if err != nil {
		return nil, classifyStorageError(err)
	}

	return &session, nil
}

func (r *PostgresSessionRepository) ListSince(ctx context.Context, ownerID, since string) ([]*domain.PrayerSession, error) {
	sessions := []*domain.PrayerSession{}

	query := `
		SELECT id, owner_id, session_date, prayer_count, completed, created_at, updated_at
		FROM prayer_sessions
		WHERE owner_id = $1
		  AND session_date >= $2
		ORDER BY session_date ASC`

	err := r.db.SelectContext(ctx, &sessions, query, ownerID, since)
	if err != nil {
		return nil, classifyStorageError(err)
	}

	return sessions, nil
}
