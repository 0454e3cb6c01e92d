package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPrayerNameEmpty      = errors.New("deceased name cannot be empty")
	ErrPrayerNameTooLong    = errors.New("deceased name is too long (max 100 chars)")
	ErrPrayerMessageTooLong = errors.New("prayer message is too long (max 500 chars)")
	ErrPrayerInvalidOwner   = errors.New("invalid owner id")
	ErrPrayerNotFound       = errors.New("prayer not found")
	ErrPrayerConflict       = errors.New("prayer version conflict")
)

const (
	MaxDeceasedNameLen = 100
	MaxMessageLen      = 500
	DefaultCategory    = "general"
)

// Prayer is a prayer dedicated to a deceased person, created by either an
// authenticated or an anonymous identity.
type Prayer struct {
	ID           string     `json:"id" db:"id"`
	OwnerID      string     `json:"owner_id" db:"owner_id"`
	DeviceID     string     `json:"device_id,omitempty" db:"device_id"`
	DeceasedName string     `json:"deceased_name" db:"deceased_name"`
	Message      string     `json:"message,omitempty" db:"message"`
	Category     string     `json:"category" db:"category"`
	Pinned       bool       `json:"pinned" db:"pinned"`
	LikeCount    int        `json:"like_count" db:"like_count"`
	Version      int        `json:"version" db:"version"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func validatePrayerFields(deceasedName, message string) (string, string, error) {
	name := strings.TrimSpace(deceasedName)
	if name == "" {
		return "", "", ErrPrayerNameEmpty
	}
	if len(name) > MaxDeceasedNameLen {
		return "", "", ErrPrayerNameTooLong
	}

	msg := strings.TrimSpace(message)
	if len(msg) > MaxMessageLen {
		return "", "", ErrPrayerMessageTooLong
	}

	return name, msg, nil
}

func NewPrayer(ownerID, deviceID, deceasedName, message, category string) (*Prayer, error) {
	if ownerID == "" {
		return nil, ErrPrayerInvalidOwner
	}

	name, msg, err := validatePrayerFields(deceasedName, message)
	if err != nil {
		return nil, err
	}

	if category == "" {
		category = DefaultCategory
	}

	now := time.Now().UTC()

	return &Prayer{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		DeviceID:     deviceID,
		DeceasedName: name,
		Message:      msg,
		Category:     category,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (p *Prayer) Update(deceasedName, message, category string) error {
	name, msg, err := validatePrayerFields(deceasedName, message)
	if err != nil {
		return err
	}

	if category == "" {
		category = p.Category
	}

	p.DeceasedName = name
	p.Message = msg
	p.Category = category
	p.UpdatedAt = time.Now().UTC()

	return nil
}

func (p *Prayer) Pin() {
	if p.Pinned {
		return
	}
	p.Pinned = true
	p.UpdatedAt = time.Now().UTC()
}

func (p *Prayer) Unpin() {
	if !p.Pinned {
		return
	}
	p.Pinned = false
	p.UpdatedAt = time.Now().UTC()
}
