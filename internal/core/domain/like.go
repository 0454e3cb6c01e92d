package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyLiked = errors.New("prayer already liked by this identity")
	ErrLikeNotFound = errors.New("like not found")
)

// Like records that an identity liked a prayer. At most one like per
// (prayer, owner) pair.
type Like struct {
	ID        string    `json:"id" db:"id"`
	PrayerID  string    `json:"prayer_id" db:"prayer_id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	DeviceID  string    `json:"device_id,omitempty" db:"device_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewLike(prayerID, ownerID, deviceID string) (*Like, error) {
	if prayerID == "" {
		return nil, ErrPrayerNotFound
	}
	if ownerID == "" {
		return nil, ErrPrayerInvalidOwner
	}

	return &Like{
		ID:        uuid.NewString(),
		PrayerID:  prayerID,
		OwnerID:   ownerID,
		DeviceID:  deviceID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
