package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

const (
	profileCacheTTL  = 30 * time.Minute
	defaultFirstName = "Utilisateur"
	defaultLanguage  = "Français"
)

// UserService serves profiles and settings with a Redis read-through cache.
// A cached profile whose id does not match the requested user is stale (left
// over from a previous session on the same device) and gets discarded.
type UserService struct {
	repo  domain.UserRepository
	cache *redis.Client
}

func NewUserService(repo domain.UserRepository, cache *redis.Client) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
	}
}

func (s *UserService) cacheKey(userID string) string {
	return fmt.Sprintf("user_profile:%s", userID)
}

func (s *UserService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate profile %s: %v", userID, err)
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if s.cache != nil {
		key := s.cacheKey(userID)
		val, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var user domain.User
			if jsonErr := json.Unmarshal([]byte(val), &user); jsonErr == nil {
				if user.ID == userID {
					return s.withDefaults(&user), nil
				}
				log.Printf("[CACHE] Profile id mismatch (cached %s, requested %s), discarding", user.ID, userID)
				s.cache.Del(ctx, key)
			} else {
				log.Printf("[CACHE] Corrupted profile for %s, cleaning up key", userID)
				s.cache.Del(ctx, key)
			}
		} else if err != redis.Nil {
			log.Printf("[CACHE] Redis read error: %v", err)
		}
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			if setErr := s.cache.Set(ctx, s.cacheKey(userID), data, profileCacheTTL).Err(); setErr != nil {
				log.Printf("[CACHE] Redis set error: %v", setErr)
			}
		}
	}

	return s.withDefaults(user), nil
}

func (s *UserService) UpdateSettings(ctx context.Context, userID string, settings domain.GeneralSettings) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ApplySettings(settings)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("user service: settings update failed: %w", err)
	}

	s.invalidate(ctx, userID)

	return s.withDefaults(user), nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, userID string, prefs domain.ReminderPreferences) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ApplyPreferences(prefs)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("user service: preferences update failed: %w", err)
	}

	s.invalidate(ctx, userID)

	return s.withDefaults(user), nil
}

func (s *UserService) CompleteOnboarding(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.CompleteOnboarding()

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("user service: onboarding update failed: %w", err)
	}

	s.invalidate(ctx, userID)

	return nil
}

// withDefaults fills display defaults on read so empty settings never reach
// the client.
func (s *UserService) withDefaults(user *domain.User) *domain.User {
	if user.Settings.FirstName == "" {
		user.Settings.FirstName = defaultFirstName
	}
	if user.Settings.Language == "" {
		user.Settings.Language = defaultLanguage
	}
	return user
}
