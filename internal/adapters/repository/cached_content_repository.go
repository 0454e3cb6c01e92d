package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

var _ domain.ContentRepository = (*CachedContentRepository)(nil)

const (
	formulasCacheKey = "content:formulas"
	versesCacheKey   = "content:verses"
	contentCacheTTL  = 24 * time.Hour
)

// CachedContentRepository caches the content lists in Redis. Content is
// admin-managed and has no write path here, so entries simply expire instead
// of being invalidated. Empty lists are not cached: the fallback chain treats
// empty as absence, and caching it would pin the bundled fallback for a day.
type CachedContentRepository struct {
	next  domain.ContentRepository
	cache *redis.Client
}

func NewCachedContentRepository(next domain.ContentRepository, cache *redis.Client) *CachedContentRepository {
	return &CachedContentRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedContentRepository) ListFormulas(ctx context.Context) ([]*domain.PrayerFormula, error) {
	var formulas []*domain.PrayerFormula
	if r.readCached(ctx, formulasCacheKey, &formulas) && len(formulas) > 0 {
		return formulas, nil
	}

	formulas, err := r.next.ListFormulas(ctx)
	if err != nil {
		return nil, err
	}

	if len(formulas) > 0 {
		r.writeCached(ctx, formulasCacheKey, formulas)
	}

	return formulas, nil
}

func (r *CachedContentRepository) ListVerses(ctx context.Context) ([]*domain.Verse, error) {
	var verses []*domain.Verse
	if r.readCached(ctx, versesCacheKey, &verses) && len(verses) > 0 {
		return verses, nil
	}

	verses, err := r.next.ListVerses(ctx)
	if err != nil {
		return nil, err
	}

	if len(verses) > 0 {
		r.writeCached(ctx, versesCacheKey, verses)
	}

	return verses, nil
}

func (r *CachedContentRepository) readCached(ctx context.Context, key string, out interface{}) bool {
	val, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] Redis read error: %v", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(val), out); err != nil {
		log.Printf("[CACHE] Corrupted data for %s, cleaning up key", key)
		r.cache.Del(ctx, key)
		return false
	}

	return true
}

func (r *CachedContentRepository) writeCached(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, contentCacheTTL).Err(); err != nil {
		log.Printf("[CACHE] Redis set error: %v", err)
	}
}
