package repository

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

// artifactRepository is the coordination layer between cache and database.
// Feed reads are served from the cache when possible; every mutation goes
// to the database and drops the affected feed snapshot.
type artifactRepository struct {
	db           domain.ArtifactRepository
	cache        domain.ArtifactCache
	rebuildGroup singleflight.Group
}

var _ domain.ArtifactRepository = (*artifactRepository)(nil)

// NewArtifactRepository creates the coordination layer repository
func NewArtifactRepository(db domain.ArtifactRepository, cache domain.ArtifactCache) *artifactRepository {
	return &artifactRepository{
		db:    db,
		cache: cache,
	}
}

// Fetch returns the kind-scoped feed, rebuilding the cache on a miss.
// singleflight collapses concurrent rebuilds of the same feed into one
// database query.
func (r *artifactRepository) Fetch(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	artifacts, err := r.cache.GetFeed(ctx, kind)
	if err == nil {
		return artifacts, nil
	}

	result, err, _ := r.rebuildGroup.Do(string(kind), func() (any, error) {
		artifacts, err := r.db.Fetch(ctx, kind)
		if err != nil {
			return nil, err
		}

		go func(data []domain.Artifact) {
			if err := r.cache.SetFeed(context.Background(), kind, data); err != nil {
				logrus.Warnf("failed to set feed cache for kind %s: %v", kind, err)
			}
		}(artifacts)

		return artifacts, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.Artifact), nil
}

func (r *artifactRepository) Store(ctx context.Context, a *domain.Artifact) error {
	if err := r.db.Store(ctx, a); err != nil {
		return err
	}
	r.invalidateFeed(a.Kind)
	return nil
}

func (r *artifactRepository) GetByID(ctx context.Context, id int64) (domain.Artifact, error) {
	return r.db.GetByID(ctx, id)
}

func (r *artifactRepository) ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (domain.Artifact, error) {
	artifact, err := r.db.ReplacePayload(ctx, id, payload)
	if err != nil {
		return domain.Artifact{}, err
	}
	r.invalidateFeed(artifact.Kind)
	return artifact, nil
}

func (r *artifactRepository) Delete(ctx context.Context, id int64) error {
	// read first so the feed of the right kind can be dropped afterwards
	artifact, err := r.db.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidateFeed(artifact.Kind)
	return nil
}

func (r *artifactRepository) AddLikes(ctx context.Context, id int64, delta int64) error {
	return r.db.AddLikes(ctx, id, delta)
}

// ToggleLike passes straight through; cached feeds may lag by the feed TTL
// while the toggle response itself always carries the database counter.
func (r *artifactRepository) ToggleLike(ctx context.Context, artifactID int64, userID string) (domain.ToggleResult, error) {
	return r.db.ToggleLike(ctx, artifactID, userID)
}

func (r *artifactRepository) RecountLikes(ctx context.Context, artifactIDs []int64) error {
	return r.db.RecountLikes(ctx, artifactIDs)
}

func (r *artifactRepository) invalidateFeed(kind domain.Kind) {
	go func() {
		if err := r.cache.InvalidateFeed(context.Background(), kind); err != nil {
			logrus.Warnf("failed to invalidate feed cache for kind %s: %v", kind, err)
		}
	}()
}
