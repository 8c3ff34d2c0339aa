package jobs

import (
	"context"
	"log"
	"time"
)

type expiredCodeDeleter interface {
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error)
}

// CodeExpiryJob purges expired unconsumed verification codes so stale
// registration and claim codes do not accumulate.
type CodeExpiryJob struct {
	repo      expiredCodeDeleter
	interval  time.Duration
	batchSize int
	stop      chan struct{}
}

func NewCodeExpiryJob(repo expiredCodeDeleter, interval time.Duration) *CodeExpiryJob {
	return &CodeExpiryJob{
		repo:      repo,
		interval:  interval,
		batchSize: 100,
		stop:      make(chan struct{}),
	}
}

func (j *CodeExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting verification code expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Verification code expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Verification code expiry job stopped")
			return
		case <-ticker.C:
			j.purgeExpiredCodes(ctx)
		}
	}
}

func (j *CodeExpiryJob) Stop() {
	close(j.stop)
}

func (j *CodeExpiryJob) purgeExpiredCodes(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx, time.Now(), j.batchSize)
	if err != nil {
		log.Printf("❌ Error purging expired verification codes: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Purged %d expired verification codes", deleted)
	}
}
