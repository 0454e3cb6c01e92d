package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PostgresContentRepository struct {
	db *sqlx.DB
}

func NewPostgresContentRepository(db *sqlx.DB) *PostgresContentRepository {
	return &PostgresContentRepository{db: db}
}

func (r *PostgresContentRepository) ListFormulas(ctx context.Context) ([]*domain.PrayerFormula, error) {
	formulas := []*domain.PrayerFormula{}

	query := `
		SELECT id, arabic, transliteration, translation, position
		FROM prayer_formulas
		ORDER BY position ASC`

	err := r.db.SelectContext(ctx, &formulas, query)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return formulas, nil
}

func (r *PostgresContentRepository) ListVerses(ctx context.Context) ([]*domain.Verse, error) {
	verses := []*domain.Verse{}

	query := `
		SELECT id, arabic, transliteration, translation, reference, position
		FROM verses
		ORDER BY position ASC`

	err := r.db.SelectContext(ctx, &verses, query)
	if err != nil {
		return nil, classifyStorageError(err)
	}
	return verses, nil
}
