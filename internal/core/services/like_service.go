package services

import (
	"context"
	"fmt"

	"github.com/awa-app/awa-backend/internal/core/domain"
	"github.com/awa-app/awa-backend/internal/core/workers"
)

type LikeService struct {
	likes   domain.LikeRepository
	prayers domain.PrayerRepository
	worker  *workers.AnalyticsWorker
}

func NewLikeService(likes domain.LikeRepository, prayers domain.PrayerRepository, worker *workers.AnalyticsWorker) *LikeService {
	return &LikeService{
		likes:   likes,
		prayers: prayers,
		worker:  worker,
	}
}

// LikeStatus is the per-identity view of a prayer's likes.
type LikeStatus struct {
	PrayerID string `json:"prayer_id"`
	Liked    bool   `json:"liked"`
	Count    int    `json:"count"`
}

func (s *LikeService) Add(ctx context.Context, prayerID string, identity domain.Identity) (*domain.Like, error) {
	// Likes are public: any identity may like any active prayer.
	if _, err := s.prayers.GetByID(ctx, prayerID); err != nil {
		return nil, err
	}

	existing, err := s.likes.GetByPrayerAndOwner(ctx, prayerID, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("like service: lookup failed: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyLiked
	}

	like, err := domain.NewLike(prayerID, identity.ID, identity.DeviceID)
	if err != nil {
		return nil, err
	}

	if err := s.likes.Create(ctx, like); err != nil {
		return nil, fmt.Errorf("like service: create failed: %w", err)
	}

	s.worker.Enqueue(prayerID)

	return like, nil
}

func (s *LikeService) Remove(ctx context.Context, prayerID string, identity domain.Identity) error {
	if err := s.likes.Delete(ctx, prayerID, identity.ID); err != nil {
		return err
	}

	s.worker.Enqueue(prayerID)

	return nil
}

func (s *LikeService) Status(ctx context.Context, prayerID string, identity domain.Identity) (*LikeStatus, error) {
	like, err := s.likes.GetByPrayerAndOwner(ctx, prayerID, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("like service: lookup failed: %w", err)
	}

	count, err := s.likes.CountByPrayer(ctx, prayerID)
	if err != nil {
		return nil, fmt.Errorf("like service: count failed: %w", err)
	}

	return &LikeStatus{
		PrayerID: prayerID,
		Liked:    like != nil,
		Count:    count,
	}, nil
}
