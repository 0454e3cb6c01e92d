package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

func ptr[T any](v T) *T {
	return &v
}

type memPrayerRepo struct {
	store map[string]*domain.Prayer
}

func newMemPrayerRepo() *memPrayerRepo {
	return &memPrayerRepo{store: make(map[string]*domain.Prayer)}
}

func (m *memPrayerRepo) Create(ctx context.Context, p *domain.Prayer) error {
	clone := *p
	m.store[p.ID] = &clone
	return nil
}

func (m *memPrayerRepo) GetByID(ctx context.Context, id string) (*domain.Prayer, error) {
	p, ok := m.store[id]
	if !ok || p.DeletedAt != nil {
		return nil, domain.ErrPrayerNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *memPrayerRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Prayer, error) {
	var list []*domain.Prayer
	for _, p := range m.store {
		if p.OwnerID == ownerID && p.DeletedAt == nil {
			clone := *p
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (m *memPrayerRepo) Update(ctx context.Context, p *domain.Prayer) error {
	if _, ok := m.store[p.ID]; !ok {
		return domain.ErrPrayerNotFound
	}
	p.Version++
	clone := *p
	m.store[p.ID] = &clone
	return nil
}

func (m *memPrayerRepo) Delete(ctx context.Context, id string, ownerID string) error {
	p, ok := m.store[id]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrPrayerNotFound
	}
	now := time.Now().UTC()
	p.DeletedAt = &now
	return nil
}

func (m *memPrayerRepo) SetLikeCount(ctx context.Context, id string, count int) error {
	p, ok := m.store[id]
	if !ok {
		return domain.ErrPrayerNotFound
	}
	p.LikeCount = count
	return nil
}

func owner(id string) domain.Identity {
	return domain.Identity{ID: id, DeviceID: "device-1", Anonymous: true}
}

func TestPrayerService_Create(t *testing.T) {
	t.Run("Success: Creates and persists a valid prayer", func(t *testing.T) {
		repo := newMemPrayerRepo()
		svc := NewPrayerService(repo)

		prayer, err := svc.Create(context.Background(), CreatePrayerInput{
			Identity:     owner("user_1"),
			DeceasedName: "Fatima",
			Message:      "Qu'Allah lui fasse miséricorde",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, prayer.ID)
		assert.Equal(t, "user_1", prayer.OwnerID)
		assert.Equal(t, domain.DefaultCategory, prayer.Category)
		assert.NotNil(t, repo.store[prayer.ID])
	})

	t.Run("Fail: Validation error blocked before repository", func(t *testing.T) {
		repo := newMemPrayerRepo()
		svc := NewPrayerService(repo)

		_, err := svc.Create(context.Background(), CreatePrayerInput{
			Identity:     owner("user_1"),
			DeceasedName: "   ",
		})

		assert.ErrorIs(t, err, domain.ErrPrayerNameEmpty)
		assert.Empty(t, repo.store)
	})
}

func TestPrayerService_GetByID(t *testing.T) {
	repo := newMemPrayerRepo()
	svc := NewPrayerService(repo)

	created, err := svc.Create(context.Background(), CreatePrayerInput{
		Identity:     owner("user_1"),
		DeceasedName: "Fatima",
	})
	require.NoError(t, err)

	t.Run("Owner can read", func(t *testing.T) {
		prayer, err := svc.GetByID(context.Background(), created.ID, owner("user_1"))
		require.NoError(t, err)
		assert.Equal(t, created.ID, prayer.ID)
	})

	t.Run("Other identity is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), created.ID, owner("user_2"))
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestPrayerService_Update(t *testing.T) {
	setup := func(t *testing.T) (*PrayerService, *domain.Prayer) {
		repo := newMemPrayerRepo()
		svc := NewPrayerService(repo)
		created, err := svc.Create(context.Background(), CreatePrayerInput{
			Identity:     owner("user_1"),
			DeceasedName: "Fatima",
			Message:      "Premier message",
		})
		require.NoError(t, err)
		return svc, created
	}

	t.Run("Success: Full update with pin", func(t *testing.T) {
		svc, created := setup(t)

		updated, err := svc.Update(context.Background(), UpdatePrayerInput{
			ID:           created.ID,
			Identity:     owner("user_1"),
			DeceasedName: "Fatima Zahra",
			Pinned:       ptr(true),
			Version:      created.Version,
		})

		require.NoError(t, err)
		assert.Equal(t, "Fatima Zahra", updated.DeceasedName)
		assert.Equal(t, "Premier message", updated.Message)
		assert.True(t, updated.Pinned)
		assert.Equal(t, created.Version+1, updated.Version)
	})

	t.Run("Fail: Stale version is rejected", func(t *testing.T) {
		svc, created := setup(t)

		_, err := svc.Update(context.Background(), UpdatePrayerInput{
			ID:           created.ID,
			Identity:     owner("user_1"),
			DeceasedName: "New",
			Version:      created.Version + 5,
		})

		assert.ErrorIs(t, err, domain.ErrPrayerConflict)
	})

	t.Run("Fail: Other identity cannot update", func(t *testing.T) {
		svc, created := setup(t)

		_, err := svc.Update(context.Background(), UpdatePrayerInput{
			ID:           created.ID,
			Identity:     owner("user_2"),
			DeceasedName: "Hacked",
		})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestPrayerService_Delete(t *testing.T) {
	repo := newMemPrayerRepo()
	svc := NewPrayerService(repo)

	created, err := svc.Create(context.Background(), CreatePrayerInput{
		Identity:     owner("user_1"),
		DeceasedName: "Fatima",
	})
	require.NoError(t, err)

	t.Run("Fail: Other identity cannot delete", func(t *testing.T) {
		err := svc.Delete(context.Background(), created.ID, owner("user_2"))
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Success: Owner soft-deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), created.ID, owner("user_1")))

		_, err := svc.GetByID(context.Background(), created.ID, owner("user_1"))
		assert.ErrorIs(t, err, domain.ErrPrayerNotFound)

		assert.NotNil(t, repo.store[created.ID].DeletedAt)
	})
}
