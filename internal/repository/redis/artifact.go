package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

const (
	KeyFeed = "artifact:feed:%s"

	// Feed snapshots go stale quickly as likes come in, so the TTL stays
	// short; every toggle response carries the authoritative counter anyway.
	FeedTTL = 30 * time.Second
)

type artifactCache struct {
	client *redis.Client
}

var _ domain.ArtifactCache = (*artifactCache)(nil)

func NewArtifactCache(client *redis.Client) *artifactCache {
	return &artifactCache{
		client,
	}
}

func (c *artifactCache) GetFeed(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	key := fmt.Sprintf(KeyFeed, kind)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var res []domain.Artifact
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *artifactCache) SetFeed(ctx context.Context, kind domain.Kind, artifacts []domain.Artifact) error {
	data, err := json.Marshal(artifacts)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(KeyFeed, kind)
	return c.client.Set(ctx, key, data, FeedTTL).Err()
}

func (c *artifactCache) InvalidateFeed(ctx context.Context, kind domain.Kind) error {
	key := fmt.Sprintf(KeyFeed, kind)
	return c.client.Del(ctx, key).Err()
}
