package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

const (
	queueSize = 1024
	batchSize = 100
)

// likeReconciler batches artifact ids touched by toggles and periodically
// rewrites their like counters from the actual like rows. The counter is a
// cache of count(likes); this keeps it self-healing should it ever drift.
type likeReconciler struct {
	artifactRepo domain.ArtifactRepository
	interval     time.Duration
	ch           chan int64
}

var _ domain.LikeReconciler = (*likeReconciler)(nil)

func NewLikeReconciler(ar domain.ArtifactRepository, interval time.Duration) *likeReconciler {
	return &likeReconciler{
		artifactRepo: ar,
		interval:     interval,
		ch:           make(chan int64, queueSize),
	}
}

// Enqueue schedules an artifact for recounting. Dropping on a full queue is
// fine: the next toggle on the same artifact re-enqueues it.
func (s *likeReconciler) Enqueue(artifactID int64) {
	select {
	case s.ch <- artifactID:
	default:
		logrus.Info("likeReconciler's queue is full, task dropped")
	}
}

func (s *likeReconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	batch := make([]int64, 0, batchSize)
	for {
		select {
		case id := <-s.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down likeReconciler, flushing remaining tasks...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *likeReconciler) flush(ctx context.Context, batch []int64) {
	if len(batch) == 0 {
		return
	}

	seen := make(map[int64]struct{}, len(batch))
	ids := make([]int64, 0, len(batch))
	for _, id := range batch {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	if err := s.artifactRepo.RecountLikes(ctx, ids); err != nil {
		logrus.Errorf("failed to recount likes for %d artifacts: %v", len(ids), err)
	}
}
