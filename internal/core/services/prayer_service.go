package services

import (
	"context"
	"fmt"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

type PrayerService struct {
	repo domain.PrayerRepository
}

func NewPrayerService(repo domain.PrayerRepository) *PrayerService {
	return &PrayerService{
		repo: repo,
	}
}

type CreatePrayerInput struct {
	Identity     domain.Identity
	DeceasedName string
	Message      string
	Category     string
}

type UpdatePrayerInput struct {
	ID           string
	Identity     domain.Identity
	DeceasedName string
	Message      string
	Category     string
	Pinned       *bool
	Version      int
}

func (s *PrayerService) Create(ctx context.Context, input CreatePrayerInput) (*domain.Prayer, error) {
	prayer, err := domain.NewPrayer(
		input.Identity.ID,
		input.Identity.DeviceID,
		input.DeceasedName,
		input.Message,
		input.Category,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, prayer); err != nil {
		return nil, fmt.Errorf("prayer service: create failed: %w", err)
	}

	return prayer, nil
}

func (s *PrayerService) GetByID(ctx context.Context, id string, identity domain.Identity) (*domain.Prayer, error) {
	prayer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prayer.OwnerID != identity.ID {
		return nil, domain.ErrUnauthorized
	}
	return prayer, nil
}

func (s *PrayerService) ListByOwner(ctx context.Context, identity domain.Identity) ([]*domain.Prayer, error) {
	return s.repo.ListByOwnerID(ctx, identity.ID)
}

func (s *PrayerService) Update(ctx context.Context, input UpdatePrayerInput) (*domain.Prayer, error) {
	prayer, err := s.GetByID(ctx, input.ID, input.Identity)
	if err != nil {
		return nil, err
	}

	if input.Version > 0 && prayer.Version != input.Version {
		return nil, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrPrayerConflict, input.Version, prayer.Version)
	}

	name := input.DeceasedName
	if name == "" {
		name = prayer.DeceasedName
	}
	message := input.Message
	if message == "" {
		message = prayer.Message
	}

	if err := prayer.Update(name, message, input.Category); err != nil {
		return nil, err
	}

	if input.Pinned != nil {
		if *input.Pinned {
			prayer.Pin()
		} else {
			prayer.Unpin()
		}
	}

	if err := s.repo.Update(ctx, prayer); err != nil {
		return nil, err
	}

	return prayer, nil
}

func (s *PrayerService) Delete(ctx context.Context, id string, identity domain.Identity) error {
	prayer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if prayer.OwnerID != identity.ID {
		return domain.ErrUnauthorized
	}

	return s.repo.Delete(ctx, id, identity.ID)
}
