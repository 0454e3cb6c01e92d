package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PostgresStreakRepository struct {
	db *sqlx.DB
}

func NewPostgresStreakRepository(db *sqlx.DB) *PostgresStreakRepository {
	return &PostgresStreakRepository{db: db}
}

type streakRow struct {
	OwnerID        string         `db:"owner_id"`
	DeviceID       sql.NullString `db:"device_id"`
	CurrentStreak  int            `db:"current_streak"`
	LongestStreak  int            `db:"longest_streak"`
	LastPrayerDate sql.NullString `db:"last_prayer_date"`
	History        []byte         `db:"history"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r *PostgresStreakRepository) Get(ctx context.Context, ownerID string) (*domain.StreakRecord, error) {
	var row streakRow

	query := `
		SELECT owner_id, device_id, current_streak, longest_streak,
		       last_prayer_date, history, created_at, updated_at
		FROM streaks
		WHERE owner_id = $1`

	err := r.db.GetContext(ctx, &row, query, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absent is not an error: the record is created lazily on the
			// first completion event.
			return nil, nil
		}
		return nil, classifyStorageError(err)
	}

	record := &domain.StreakRecord{
		OwnerID:        row.OwnerID,
		DeviceID:       row.DeviceID.String,
		CurrentStreak:  row.CurrentStreak,
		LongestStreak:  row.LongestStreak,
		LastPrayerDate: row.LastPrayerDate.String,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	if len(row.History) > 0 {
		if err := json.Unmarshal(row.History, &record.History); err != nil {
			return nil, fmt.Errorf("repository: corrupted streak history for %s: %w", ownerID, err)
		}
	}

	return record, nil
}

func (r *PostgresStreakRepository) Put(ctx context.Context, record *domain.StreakRecord) error {
	history, err := json.Marshal(record.History)
	if err != nil {
		return fmt.Errorf("repository: marshal streak history failed: %w", err)
	}

	query := `
		INSERT INTO streaks (
			owner_id, device_id, current_streak, longest_streak,
			last_prayer_date, history, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id) DO UPDATE SET
			device_id = EXCLUDED.device_id,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_prayer_date = EXCLUDED.last_prayer_date,
			history = EXCLUDED.history,
			updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		record.OwnerID,
		record.DeviceID,
		record.CurrentStreak,
		record.LongestStreak,
		record.LastPrayerDate,
		history,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return classifyStorageError(err)
	}

	return nil
}

func (r *PostgresStreakRepository) Rename(ctx context.Context, fromOwnerID, toOwnerID string) error {
	query := `UPDATE streaks SET owner_id = $2, updated_at = $3 WHERE owner_id = $1`

	_, err := r.db.ExecContext(ctx, query, fromOwnerID, toOwnerID, time.Now().UTC())
	if err != nil {
		return classifyStorageError(err)
	}

	return nil
}

// pgErrorCode extracts the SQLSTATE code from a Postgres error regardless of
// driver: the production pool speaks pgx, the integration tests open through
// lib/pq.
func pgErrorCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}

	return "", false
}

// classifyStorageError maps driver failures onto the domain storage taxonomy
// so callers can tell a retryable outage from an authorization problem.
func classifyStorageError(err error) error {
	if code, ok := pgErrorCode(err); ok {
		switch code {
		case "42501", "28000", "28P01": // insufficient_privilege, invalid auth
			return fmt.Errorf("%w: %v", domain.ErrStoragePermission, err)
		}
		if strings.HasPrefix(code, "08") { // connection exceptions
			return fmt.Errorf("%w: %v", domain.ErrStorageTransient, err)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", domain.ErrStorageTransient, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", domain.ErrStorageTransient, err)
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %v", domain.ErrStorageTransient, err)
	}

	return err
}
