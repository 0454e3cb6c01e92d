package services

import (
	"context"
	"fmt"
	"log"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

// ContentService serves prayer formulas and verses through an ordered chain
// of providers: the remote store first, bundled static content as the last
// resort. A failing provider is logged and the next one is tried; an empty
// result is treated as absent, not as an answer.
type ContentService struct {
	providers []domain.ContentRepository
}

func NewContentService(providers ...domain.ContentRepository) *ContentService {
	return &ContentService{
		providers: providers,
	}
}

func (s *ContentService) GetFormulas(ctx context.Context) ([]*domain.PrayerFormula, error) {
	var lastErr error

	for i, provider := range s.providers {
		formulas, err := provider.ListFormulas(ctx)
		if err != nil {
			log.Printf("content: provider %d formulas failed, trying next: %v", i, err)
			lastErr = err
			continue
		}
		if len(formulas) == 0 {
			continue
		}
		return formulas, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("content service: all providers failed: %w", lastErr)
	}
	return []*domain.PrayerFormula{}, nil
}

func (s *ContentService) GetVerses(ctx context.Context) ([]*domain.Verse, error) {
	var lastErr error

	for i, provider := range s.providers {
		verses, err := provider.ListVerses(ctx)
		if err != nil {
			log.Printf("content: provider %d verses failed, trying next: %v", i, err)
			lastErr = err
			continue
		}
		if len(verses) == 0 {
			continue
		}
		return verses, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("content service: all providers failed: %w", lastErr)
	}
	return []*domain.Verse{}, nil
}
