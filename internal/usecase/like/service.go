package like

import (
	"context"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

type Service struct {
	artifactRepo domain.ArtifactRepository
	reconciler   domain.LikeReconciler
}

var _ domain.LikeUsecase = (*Service)(nil)

// NewService will create a new like ledger service object
func NewService(a domain.ArtifactRepository, r domain.LikeReconciler) *Service {
	return &Service{
		artifactRepo: a,
		reconciler:   r,
	}
}

// Toggle flips the like state of userID toward artifactID. Existence of the
// like row is decided by the storage layer inside one transaction; the
// returned count is the database value, ready for the client to reconcile
// its optimistic update against.
func (s *Service) Toggle(ctx context.Context, artifactID int64, userID string) (domain.ToggleResult, error) {
	if artifactID <= 0 || userID == "" {
		return domain.ToggleResult{}, domain.ErrBadParamInput
	}

	res, err := s.artifactRepo.ToggleLike(ctx, artifactID, userID)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	s.reconciler.Enqueue(artifactID)
	return res, nil
}
