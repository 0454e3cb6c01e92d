package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PostgresLikeRepository struct {
	db *sqlx.DB
}

func NewPostgresLikeRepository(db *sqlx.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (id, prayer_id, owner_id, device_id, created_at)
		VALUES (:id, :prayer_id, :owner_id, :device_id, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, like)
	if err != nil {
		if code, ok := pgErrorCode(err); ok {
			if code == "23505" { // unique (prayer_id, owner_id)
				return domain.ErrAlreadyLiked
			}
			if code == "23503" {
				return domain.ErrPrayerNotFound
			}
		}
		return classifyStorageError(err)
	}
	return nil
}

func (r *PostgresLikeRepository) Delete(ctx context.Context, prayerID, ownerID string) error {
	query := `DELETE FROM likes WHERE prayer_id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, prayerID, ownerID)
	if err != nil {
		return classifyStorageError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLikeNotFound
	}

	return nil
}

func (r *PostgresLikeRepository) GetByPrayerAndOwner(ctx context.Context, prayerID, ownerID string) (*domain.Like, error) {
	var like domain.Like
	query := `SELECT * FROM likes WHERE prayer_id = $1 AND owner_id = $2`

	err := r.db.GetContext(ctx, &like, query, prayerID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyStorageError(err)
	}
	return &like, nil
}

func (r *PostgresLikeRepository) CountByPrayer(ctx context.Context, prayerID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM likes WHERE prayer_id = $1`, prayerID)
	if err != nil {
		return 0, classifyStorageError(err)
	}
	return count, nil
}
