package artifact

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

type Service struct {
	artifactRepo domain.ArtifactRepository
}

var _ domain.ArtifactUsecase = (*Service)(nil)

// NewService will create a new artifact service object
func NewService(a domain.ArtifactRepository) *Service {
	return &Service{
		artifactRepo: a,
	}
}

// payloadPresent reports whether p holds an actual JSON value. The payload
// stays opaque beyond that: it is stored and returned byte-for-byte.
func payloadPresent(p json.RawMessage) bool {
	trimmed := bytes.TrimSpace(p)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}
	return json.Valid(trimmed)
}

func (s *Service) Create(ctx context.Context, ownerID string, kind domain.Kind, payload json.RawMessage) (domain.Artifact, error) {
	if ownerID == "" || !kind.Valid() || !payloadPresent(payload) {
		return domain.Artifact{}, domain.ErrBadParamInput
	}

	artifact := domain.Artifact{
		OwnerID: ownerID,
		Kind:    kind,
		Payload: payload,
	}
	if err := s.artifactRepo.Store(ctx, &artifact); err != nil {
		return domain.Artifact{}, err
	}
	return artifact, nil
}

func (s *Service) Fetch(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	if !kind.Valid() {
		return nil, domain.ErrBadParamInput
	}
	return s.artifactRepo.Fetch(ctx, kind)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Artifact, error) {
	return s.artifactRepo.GetByID(ctx, id)
}

func (s *Service) ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (domain.Artifact, error) {
	if !payloadPresent(payload) {
		return domain.Artifact{}, domain.ErrBadParamInput
	}
	return s.artifactRepo.ReplacePayload(ctx, id, payload)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.artifactRepo.Delete(ctx, id)
}
