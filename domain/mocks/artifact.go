package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

// ArtifactRepository is a mock type for the domain.ArtifactRepository interface
type ArtifactRepository struct {
	mock.Mock
}

func (m *ArtifactRepository) Store(ctx context.Context, a *domain.Artifact) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArtifactRepository) Fetch(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artifact), args.Error(1)
}

func (m *ArtifactRepository) GetByID(ctx context.Context, id int64) (domain.Artifact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Artifact), args.Error(1)
}

func (m *ArtifactRepository) ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (domain.Artifact, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(domain.Artifact), args.Error(1)
}

func (m *ArtifactRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArtifactRepository) AddLikes(ctx context.Context, id int64, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *ArtifactRepository) ToggleLike(ctx context.Context, artifactID int64, userID string) (domain.ToggleResult, error) {
	args := m.Called(ctx, artifactID, userID)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}

func (m *ArtifactRepository) RecountLikes(ctx context.Context, artifactIDs []int64) error {
	args := m.Called(ctx, artifactIDs)
	return args.Error(0)
}

// ArtifactCache is a mock type for the domain.ArtifactCache interface
type ArtifactCache struct {
	mock.Mock
}

func (m *ArtifactCache) GetFeed(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artifact), args.Error(1)
}

func (m *ArtifactCache) SetFeed(ctx context.Context, kind domain.Kind, artifacts []domain.Artifact) error {
	args := m.Called(ctx, kind, artifacts)
	return args.Error(0)
}

func (m *ArtifactCache) InvalidateFeed(ctx context.Context, kind domain.Kind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}

// ArtifactUsecase is a mock type for the domain.ArtifactUsecase interface
type ArtifactUsecase struct {
	mock.Mock
}

func (m *ArtifactUsecase) Create(ctx context.Context, ownerID string, kind domain.Kind, payload json.RawMessage) (domain.Artifact, error) {
	args := m.Called(ctx, ownerID, kind, payload)
	return args.Get(0).(domain.Artifact), args.Error(1)
}

func (m *ArtifactUsecase) Fetch(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artifact), args.Error(1)
}

func (m *ArtifactUsecase) GetByID(ctx context.Context, id int64) (domain.Artifact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Artifact), args.Error(1)
}

func (m *ArtifactUsecase) ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (domain.Artifact, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(domain.Artifact), args.Error(1)
}

func (m *ArtifactUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
