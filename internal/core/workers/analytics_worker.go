package workers

import (
	"context"
	"log"
)

type PrayerRepository interface {
	SetLikeCount(ctx context.Context, id string, count int) error
}

type LikeRepository interface {
	CountByPrayer(ctx context.Context, prayerID string) (int, error)
}

type LikeCountJob struct {
	PrayerID string
}

// AnalyticsWorker recomputes denormalized like counters off the request path.
// Like mutations enqueue a job; a stale counter is repaired by the next job
// for the same prayer, so dropping jobs under pressure is acceptable.
type AnalyticsWorker struct {
	prayerRepo PrayerRepository
	likeRepo   LikeRepository
	jobs       chan LikeCountJob
}

func NewAnalyticsWorker(pRepo PrayerRepository, lRepo LikeRepository) *AnalyticsWorker {
	return &AnalyticsWorker{
		prayerRepo: pRepo,
		likeRepo:   lRepo,
		jobs:       make(chan LikeCountJob, 100),
	}
}

func (w *AnalyticsWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Analytics Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Analytics Worker shutting down...")
				return
			}
		}
	}()
}

func (w *AnalyticsWorker) Enqueue(prayerID string) {
	select {
	case w.jobs <- LikeCountJob{PrayerID: prayerID}:
	default:
		log.Printf("Analytics Worker queue full! Dropping job for prayer %s", prayerID)
	}
}

func (w *AnalyticsWorker) processJob(ctx context.Context, job LikeCountJob) {
	count, err := w.likeRepo.CountByPrayer(ctx, job.PrayerID)
	if err != nil {
		log.Printf("Worker Error counting likes for %s: %v", job.PrayerID, err)
		return
	}

	if err := w.prayerRepo.SetLikeCount(ctx, job.PrayerID, count); err != nil {
		log.Printf("Worker Failed to update like count for %s: %v", job.PrayerID, err)
	}
}
