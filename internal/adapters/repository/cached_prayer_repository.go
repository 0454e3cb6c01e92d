package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

var _ domain.PrayerRepository = (*CachedPrayerRepository)(nil)

// CachedPrayerRepository caches the per-owner prayer list in Redis and
// invalidates it on every write. Reads by id always hit the inner repository.
type CachedPrayerRepository struct {
	next  domain.PrayerRepository
	cache *redis.Client
}

func NewCachedPrayerRepository(next domain.PrayerRepository, cache *redis.Client) *CachedPrayerRepository {
	return &CachedPrayerRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedPrayerRepository) cacheKey(ownerID string) string {
	return fmt.Sprintf("prayers:%s", ownerID)
}

func (r *CachedPrayerRepository) invalidate(ctx context.Context, ownerID string) {
	if err := r.cache.Del(ctx, r.cacheKey(ownerID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for owner %s: %v", ownerID, err)
	}
}

func (r *CachedPrayerRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Prayer, error) {
	key := r.cacheKey(ownerID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var prayers []*domain.Prayer
		if err := json.Unmarshal([]byte(val), &prayers); err == nil {
			return prayers, nil
		}

		log.Printf("[CACHE] Corrupted data for owner %s, cleaning up key", ownerID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	prayers, err := r.next.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(prayers); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return prayers, nil
}

func (r *CachedPrayerRepository) GetByID(ctx context.Context, id string) (*domain.Prayer, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedPrayerRepository) Create(ctx context.Context, prayer *domain.Prayer) error {
	if err := r.next.Create(ctx, prayer); err != nil {
		return err
	}
	r.invalidate(ctx, prayer.OwnerID)
	return nil
}

func (r *CachedPrayerRepository) Update(ctx context.Context, prayer *domain.Prayer) error {
	if err := r.next.Update(ctx, prayer); err != nil {
		return err
	}
	r.invalidate(ctx, prayer.OwnerID)
	return nil
}

func (r *CachedPrayerRepository) Delete(ctx context.Context, id string, ownerID string) error {
	if err := r.next.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	r.invalidate(ctx, ownerID)
	return nil
}

func (r *CachedPrayerRepository) SetLikeCount(ctx context.Context, id string, count int) error {
	prayer, err := r.next.GetByID(ctx, id)
	if err == nil && prayer != nil {
		defer r.invalidate(ctx, prayer.OwnerID)
	}

	return r.next.SetLikeCount(ctx, id, count)
}
