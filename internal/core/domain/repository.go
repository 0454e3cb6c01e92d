package domain

import (
	"context"
)

type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by its (lowercased) email address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile, settings and preference changes.
	Update(ctx context.Context, user *User) error
}

type PrayerRepository interface {
	// Create persists a new prayer.
	Create(ctx context.Context, prayer *Prayer) error

	// GetByID retrieves a single active (non-deleted) prayer.
	GetByID(ctx context.Context, id string) (*Prayer, error)

	// ListByOwnerID retrieves all active prayers of an identity,
	// pinned first, newest first within each group.
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Prayer, error)

	// Update modifies an existing prayer.
	// Implementations must handle optimistic locking (version check).
	Update(ctx context.Context, prayer *Prayer) error

	// Delete performs a soft delete. It requires ownerID so an identity
	// can only delete its own prayers.
	Delete(ctx context.Context, id string, ownerID string) error

	// SetLikeCount stores the denormalized like counter, written by the
	// analytics worker.
	SetLikeCount(ctx context.Context, id string, count int) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *Like) error

	// Delete removes the like an identity placed on a prayer.
	Delete(ctx context.Context, prayerID, ownerID string) error

	// GetByPrayerAndOwner returns (nil, nil) when the identity has not
	// liked the prayer.
	GetByPrayerAndOwner(ctx context.Context, prayerID, ownerID string) (*Like, error)

	CountByPrayer(ctx context.Context, prayerID string) (int, error)
}

type ContentRepository interface {
	ListFormulas(ctx context.Context) ([]*PrayerFormula, error)
	ListVerses(ctx context.Context) ([]*Verse, error)
}
