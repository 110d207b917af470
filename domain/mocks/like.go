package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

// LikeUsecase is a mock type for the domain.LikeUsecase interface
type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) Toggle(ctx context.Context, artifactID int64, userID string) (domain.ToggleResult, error) {
	args := m.Called(ctx, artifactID, userID)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}

// LikeReconciler is a mock type for the domain.LikeReconciler interface
type LikeReconciler struct {
	mock.Mock
}

func (m *LikeReconciler) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *LikeReconciler) Enqueue(artifactID int64) {
	m.Called(artifactID)
}
