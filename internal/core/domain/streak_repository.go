package domain

import (
	"context"
	"time"
)

type StreakRepository interface {
	// Get fetches the streak record for an identity.
	// An absent record is not an error: it returns (nil, nil).
	Get(ctx context.Context, ownerID string) (*StreakRecord, error)

	// Put is an idempotent create-or-replace of the full record.
	Put(ctx context.Context, record *StreakRecord) error

	// Rename moves a record from one owner to another. Used when an
	// anonymous identity is claimed by a freshly registered account.
	Rename(ctx context.Context, fromOwnerID, toOwnerID string) error
}

// PrayerSession aggregates the completion events of a single calendar day.
// A second prayer on the same day increments PrayerCount instead of adding
// a new session.
type PrayerSession struct {
	ID          string    `json:"id" db:"id"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	Date        string    `json:"date" db:"session_date"`
	PrayerCount int       `json:"prayer_count" db:"prayer_count"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type PrayerSessionRepository interface {
	// Record upserts the session for (ownerID, date), incrementing the
	// prayer count when the day already has one.
	Record(ctx context.Context, ownerID, date string) (*PrayerSession, error)

	// ListSince returns sessions for an owner with date >= since,
	// ordered by date ascending.
	ListSince(ctx context.Context, ownerID, since string) ([]*PrayerSession, error)
}
