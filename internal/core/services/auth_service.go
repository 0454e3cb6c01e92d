package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

// StreakClaimer moves anonymously accumulated streak data under a freshly
// registered account.
type StreakClaimer interface {
	ClaimAnonymousRecord(ctx context.Context, anonID, userID string) error
}

type AuthService struct {
	repo    domain.UserRepository
	streaks StreakClaimer
}

func NewAuthService(repo domain.UserRepository, streaks StreakClaimer) *AuthService {
	return &AuthService{
		repo:    repo,
		streaks: streaks,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string

	// AnonymousID is the pre-registration identity whose streak should be
	// carried over to the new account, if any.
	AnonymousID string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	id := uuid.NewString()
	user, err := domain.NewUser(id, input.Email, input.Name)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	if s.streaks != nil && input.AnonymousID != "" {
		// Claiming is best-effort: the account is created either way and the
		// anonymous record stays reachable under its old id.
		if err := s.streaks.ClaimAnonymousRecord(ctx, input.AnonymousID, user.ID); err != nil {
			log.Printf("auth service: could not claim anonymous streak %s: %v", input.AnonymousID, err)
		}
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: lookup failed: %w", err)
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
