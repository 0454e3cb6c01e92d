package services

import (
	"context"
	"fmt"
	"time"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

// StreakService orchestrates the session-recording flow:
// read record -> advance (pure) -> persist. No retries live here; recording
// is user-initiated and the same-day path is idempotent, so the caller can
// simply re-trigger on failure.
type StreakService struct {
	streaks  domain.StreakRepository
	sessions domain.PrayerSessionRepository
	now      func() time.Time
}

func NewStreakService(streaks domain.StreakRepository, sessions domain.PrayerSessionRepository) *StreakService {
	return &StreakService{
		streaks:  streaks,
		sessions: sessions,
		now:      time.Now,
	}
}

// StreakStats is the month-level summary shown on the profile screen.
type StreakStats struct {
	Streak            *domain.StreakRecord `json:"streak"`
	TotalPrayers      int                  `json:"total_prayers"`
	SessionsThisMonth int                  `json:"sessions_this_month"`
}

// RecordSession applies one completion event for the identity and returns the
// updated record. On any storage failure the returned record is nil and
// nothing may be treated as persisted.
func (s *StreakService) RecordSession(ctx context.Context, identity domain.Identity) (*domain.StreakRecord, error) {
	today := s.now()

	existing, err := s.streaks.Get(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("streak service: read failed: %w", err)
	}

	if _, err := s.sessions.Record(ctx, identity.ID, domain.DayKey(today)); err != nil {
		return nil, fmt.Errorf("streak service: session upsert failed: %w", err)
	}

	updated := domain.AdvanceStreak(existing, identity.ID, today)
	if updated.DeviceID == "" {
		updated.DeviceID = identity.DeviceID
	}

	if err := s.streaks.Put(ctx, updated); err != nil {
		return nil, fmt.Errorf("streak service: write failed: %w", err)
	}

	return updated, nil
}

// GetStreak returns the identity's record, or an empty zero-streak view when
// none exists yet. Reads never create records.
func (s *StreakService) GetStreak(ctx context.Context, identity domain.Identity) (*domain.StreakRecord, error) {
	record, err := s.streaks.Get(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("streak service: read failed: %w", err)
	}

	if record == nil {
		record = &domain.StreakRecord{
			OwnerID:  identity.ID,
			DeviceID: identity.DeviceID,
			History:  []domain.DayEntry{},
		}
	}

	return record, nil
}

// GetWeeklyProgress projects the record onto the current Sunday-start week.
func (s *StreakService) GetWeeklyProgress(ctx context.Context, identity domain.Identity) ([]domain.DayProgress, error) {
	record, err := s.streaks.Get(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("streak service: read failed: %w", err)
	}

	return domain.WeeklyProgress(record, s.now()), nil
}

// GetStats aggregates the current record with this month's prayer sessions.
func (s *StreakService) GetStats(ctx context.Context, identity domain.Identity) (*StreakStats, error) {
	record, err := s.GetStreak(ctx, identity)
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	sessions, err := s.sessions.ListSince(ctx, identity.ID, domain.DayKey(monthStart))
	if err != nil {
		return nil, fmt.Errorf("streak service: session list failed: %w", err)
	}

	stats := &StreakStats{Streak: record}
	for _, session := range sessions {
		stats.TotalPrayers += session.PrayerCount
		if session.Completed {
			stats.SessionsThisMonth++
		}
	}

	return stats, nil
}

// ClaimAnonymousRecord moves the streak accumulated under an anonymous
// identity to a freshly registered account. If the account already has a
// record, the anonymous one is left behind rather than overwriting it.
func (s *StreakService) ClaimAnonymousRecord(ctx context.Context, anonID, userID string) error {
	if anonID == "" || anonID == userID {
		return nil
	}

	existing, err := s.streaks.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("streak service: claim read failed: %w", err)
	}
	if existing != nil {
		return nil
	}

	if err := s.streaks.Rename(ctx, anonID, userID); err != nil {
		return fmt.Errorf("streak service: claim failed: %w", err)
	}

	return nil
}
