package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
)

// GeneralSettings holds profile fields the user edits from the settings
// drawer. Defaults are applied on read, not stored.
type GeneralSettings struct {
	FirstName string `json:"first_name"`
	Language  string `json:"language"`
}

// ReminderPreferences drives the daily reminder notifications.
type ReminderPreferences struct {
	ReminderTime         string `json:"reminder_time,omitempty"`
	ReminderFrequency    string `json:"reminder_frequency,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

type User struct {
	ID                  string              `json:"id" db:"id"`
	Email               string              `json:"email" db:"email"`
	Name                string              `json:"name" db:"name"`
	PasswordHash        string              `json:"-" db:"password_hash"`
	OnboardingCompleted bool                `json:"onboarding_completed" db:"onboarding_completed"`
	Settings            GeneralSettings     `json:"settings"`
	Preferences         ReminderPreferences `json:"preferences"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" db:"updated_at"`
}

func NewUser(id, email, name string) (*User, error) {

	email = strings.TrimSpace(email)

	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &User{
		ID:    id,
		Email: strings.ToLower(email),
		Name:  strings.TrimSpace(name),
		Settings: GeneralSettings{
			FirstName: strings.TrimSpace(name),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *User) SetPassword(plainPassword string) error {
	if utf8.RuneCountInString(plainPassword) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), 12)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) CheckPassword(plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainPassword))
}

// ApplySettings merges non-empty fields into the stored settings, so partial
// updates never blank out existing values.
func (u *User) ApplySettings(s GeneralSettings) {
	if v := strings.TrimSpace(s.FirstName); v != "" {
		u.Settings.FirstName = v
	}
	if v := strings.TrimSpace(s.Language); v != "" {
		u.Settings.Language = v
	}
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) ApplyPreferences(p ReminderPreferences) {
	u.Preferences = p
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) CompleteOnboarding() {
	if u.OnboardingCompleted {
		return
	}
	u.OnboardingCompleted = true
	u.UpdatedAt = time.Now().UTC()
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
