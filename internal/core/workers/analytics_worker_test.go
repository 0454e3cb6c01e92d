package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type memCounts struct {
	mu       sync.Mutex
	counts   map[string]int
	written  map[string]int
	countErr error
	setErr   error
}

func newMemCounts() *memCounts {
	return &memCounts{
		counts:  make(map[string]int),
		written: make(map[string]int),
	}
}

func (m *memCounts) CountByPrayer(ctx context.Context, prayerID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.counts[prayerID], nil
}

func (m *memCounts) SetLikeCount(ctx context.Context, id string, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.written[id] = count
	return nil
}

func (m *memCounts) writtenCount(id string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.written[id]
	return c, ok
}

func TestAnalyticsWorker_ProcessJob(t *testing.T) {
	t.Run("Recomputes and writes the like count", func(t *testing.T) {
		repo := newMemCounts()
		repo.counts["prayer-1"] = 3

		w := NewAnalyticsWorker(repo, repo)
		w.processJob(context.Background(), LikeCountJob{PrayerID: "prayer-1"})

		got, ok := repo.writtenCount("prayer-1")
		assert.True(t, ok)
		assert.Equal(t, 3, got)
	})

	t.Run("Count failure skips the write", func(t *testing.T) {
		repo := newMemCounts()
		repo.countErr = errors.New("db down")

		w := NewAnalyticsWorker(repo, repo)
		w.processJob(context.Background(), LikeCountJob{PrayerID: "prayer-1"})

		_, ok := repo.writtenCount("prayer-1")
		assert.False(t, ok)
	})
}

func TestAnalyticsWorker_EnqueueAndRun(t *testing.T) {
	t.Run("Enqueued job is processed in background", func(t *testing.T) {
		repo := newMemCounts()
		repo.counts["prayer-1"] = 5

		w := NewAnalyticsWorker(repo, repo)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w.Start(ctx)

		w.Enqueue("prayer-1")

		assert.Eventually(t, func() bool {
			got, ok := repo.writtenCount("prayer-1")
			return ok && got == 5
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Full queue drops jobs instead of blocking", func(t *testing.T) {
		repo := newMemCounts()
		w := NewAnalyticsWorker(repo, repo)
		// worker not started, channel fills up

		done := make(chan struct{})
		go func() {
			for i := 0; i < 200; i++ {
				w.Enqueue("prayer-x")
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Enqueue blocked on full queue")
		}
	})
}
