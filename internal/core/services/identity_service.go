package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

const anonKeyPrefix = "anon_user:"

// LocalStore is the device-local key/value persistence backing the anonymous
// identity fallback. An absent key is ("", nil), not an error.
type LocalStore interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// TokenValidator checks a bearer token and returns the account id it carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

// IdentityResolver produces a stable identity for the current actor. It
// prefers an authenticated account id and falls back to an anonymous id
// persisted per device, so the streak feature works before sign-up.
type IdentityResolver struct {
	tokens TokenValidator
	store  LocalStore
}

func NewIdentityResolver(tokens TokenValidator, store LocalStore) *IdentityResolver {
	return &IdentityResolver{
		tokens: tokens,
		store:  store,
	}
}

func (r *IdentityResolver) Resolve(ctx context.Context, bearerToken, deviceID string) (domain.Identity, error) {
	if bearerToken != "" && r.tokens != nil {
		userID, err := r.tokens.ValidateToken(bearerToken)
		if err == nil {
			return domain.Identity{ID: userID, DeviceID: deviceID, Anonymous: false}, nil
		}
		// An expired or malformed token is treated as "no session" and the
		// anonymous fallback takes over; the streak feature must not break
		// mid-session.
		log.Printf("identity: token rejected, falling back to anonymous: %v", err)
	}

	if deviceID == "" {
		deviceID = "device_" + uuid.NewString()
	}

	key := anonKeyPrefix + deviceID

	anonID, err := r.store.GetItem(ctx, key)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: local store read failed: %v", domain.ErrIdentityUnavailable, err)
	}

	if anonID == "" {
		anonID = "user_" + uuid.NewString()
		if err := r.store.SetItem(ctx, key, anonID); err != nil {
			return domain.Identity{}, fmt.Errorf("%w: local store write failed: %v", domain.ErrIdentityUnavailable, err)
		}
	}

	return domain.Identity{ID: anonID, DeviceID: deviceID, Anonymous: true}, nil
}
