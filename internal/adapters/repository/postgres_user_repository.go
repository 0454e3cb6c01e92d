package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	settings, preferences, err := marshalUserBlobs(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, email, name, password_hash, onboarding_completed, settings, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.OnboardingCompleted,
		settings,
		preferences,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if code, ok := pgErrorCode(err); ok && code == "23505" {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", classifyStorageError(err))
	}

	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `
		SELECT id, email, name, password_hash, onboarding_completed, settings, preferences, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `
		SELECT id, email, name, password_hash, onboarding_completed, settings, preferences, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	settings, preferences, err := marshalUserBlobs(user)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $1,
		    onboarding_completed = $2,
		    settings = $3,
		    preferences = $4,
		    updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Name,
		user.OnboardingCompleted,
		settings,
		preferences,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("repository: update user failed: %w", classifyStorageError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *PostgresUserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var settings, preferences []byte

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.OnboardingCompleted,
		&settings,
		&preferences,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user failed: %w", classifyStorageError(err))
	}

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &user.Settings); err != nil {
			return nil, fmt.Errorf("repository: corrupted user settings: %w", err)
		}
	}
	if len(preferences) > 0 {
		if err := json.Unmarshal(preferences, &user.Preferences); err != nil {
			return nil, fmt.Errorf("repository: corrupted user preferences: %w", err)
		}
	}

	return &user, nil
}

func marshalUserBlobs(user *domain.User) ([]byte, []byte, error) {
	settings, err := json.Marshal(user.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: marshal settings failed: %w", err)
	}
	preferences, err := json.Marshal(user.Preferences)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: marshal preferences failed: %w", err)
	}
	return settings, preferences, nil
}
