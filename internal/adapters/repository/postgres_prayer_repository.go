package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PostgresPrayerRepository struct {
	db *sqlx.DB
}

func NewPostgresPrayerRepository(db *sqlx.DB) *PostgresPrayerRepository {
	return &PostgresPrayerRepository{db: db}
}

func (r *PostgresPrayerRepository) Create(ctx context.Context, prayer *domain.Prayer) error {
	if prayer.ID == "" {
		prayer.ID = uuid.NewString()
	}

	query := `
		INSERT INTO prayers (
			id, owner_id, device_id,
			deceased_name, message, category,
			pinned, like_count, version,
			created_at, updated_at, deleted_at
		) VALUES (
			:id, :owner_id, :device_id,
			:deceased_name, :message, :category,
			:pinned, :like_count, :version,
			:created_at, :updated_at, :deleted_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, prayer)
	if err != nil {
		if code, ok := pgErrorCode(err); ok && code == "23505" {
			return domain.ErrPrayerConflict
		}
		return classifyStorageError(err)
	}
	return nil
}

func (r *PostgresPrayerRepository) GetByID(ctx context.Context, id string) (*domain.Prayer, error) {
	var prayer domain.Prayer
	query := `SELECT * FROM prayers WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &prayer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPrayerNotFound
		}
		return nil, classifyStorageError(err)
	}
	return &prayer, nil
}

func (r *PostgresPrayerRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Prayer, error) {
	prayers := []*domain.Prayer{}

	query := `
		SELECT * FROM prayers
		WHERE owner_id = $1
		  AND deleted_at IS NULL
		ORDER BY pinned DESC, created_at DESC`

	err := r.db.SelectContext(ctx, &prayers, query, ownerID)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return prayers, nil
}

func (r *PostgresPrayerRepository) Update(ctx context.Context, prayer *domain.Prayer) error {
	prayer.Version++
	prayer.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE prayers
		SET deceased_name = :deceased_name,
		    message = :message,
		    category = :category,
		    pinned = :pinned,
		    version = :version,
		    updated_at = :updated_at
		WHERE id = :id
		  AND version = :version - 1  -- Optimistic Lock check
		  AND deleted_at IS NULL`

	result, err := r.db.NamedExecContext(ctx, query, prayer)
	if err != nil {
		return classifyStorageError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		exists, _ := r.exists(ctx, prayer.ID)
		if !exists {
			return domain.ErrPrayerNotFound
		}
		return domain.ErrPrayerConflict
	}

	return nil
}

func (r *PostgresPrayerRepository) Delete(ctx context.Context, id string, ownerID string) error {
	now := time.Now().UTC()

	query := `
		UPDATE prayers
		SET deleted_at = $1,
		    updated_at = $1,
		    version = version + 1
		WHERE id = $2
		  AND owner_id = $3 -- Security Check
		  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, now, id, ownerID)
	if err != nil {
		return classifyStorageError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPrayerNotFound
	}

	return nil
}

func (r *PostgresPrayerRepository) SetLikeCount(ctx context.Context, id string, count int) error {
	query := `
		UPDATE prayers
		SET like_count = $1,
		    updated_at = $2
		WHERE id = $3
		  AND deleted_at IS NULL`

	_, err := r.db.ExecContext(ctx, query, count, time.Now().UTC(), id)
	if err != nil {
		return classifyStorageError(err)
	}
	return nil
}

func (r *PostgresPrayerRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM prayers WHERE id = $1", id)
	return count > 0, err
}
