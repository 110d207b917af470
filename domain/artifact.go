package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Kind discriminates the two artifact variants sharing one store.
type Kind string

const (
	// KindArt is a parametric blob animation described by a configuration object.
	KindArt Kind = "art"
	// KindDrawing is a freehand canvas capture encoded as a PNG data URI.
	KindDrawing Kind = "drawing"
)

// Valid reports whether k names a known artifact variant.
func (k Kind) Valid() bool {
	return k == KindArt || k == KindDrawing
}

// Artifact is representing the Artifact data struct
type Artifact struct {
	ID        int64           // Unique identifier, assigned by the store
	OwnerID   string          // Identity-provider subject of the creator
	Kind      Kind            // Variant discriminant: art or drawing
	Payload   json.RawMessage // Opaque render configuration, stored byte-for-byte
	LikeCount int64           // Denormalized count of like rows for this artifact
	CreatedAt time.Time       // Creation timestamp, the feed's sole sort key
	UpdatedAt time.Time       // Last payload replacement timestamp
}

// ArtifactRepository defines the contract for artifact data persistence.
type ArtifactRepository interface {
	// Store creates a new artifact with a zero like count.
	// Backfills ID, CreatedAt and UpdatedAt on the provided Artifact.
	Store(ctx context.Context, a *Artifact) error

	// Fetch retrieves all artifacts of the given kind, newest first.
	Fetch(ctx context.Context, kind Kind) ([]Artifact, error)

	// GetByID retrieves a single artifact by its ID.
	// Returns ErrNotFound if the artifact doesn't exist.
	GetByID(ctx context.Context, id int64) (Artifact, error)

	// ReplacePayload swaps the payload wholesale, never merging with the
	// previous value. LikeCount and CreatedAt are untouched.
	// Returns ErrNotFound if the artifact doesn't exist.
	ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (Artifact, error)

	// Delete removes an artifact and, in the same transaction, every like
	// row referencing it. Returns ErrNotFound if the artifact doesn't exist.
	Delete(ctx context.Context, id int64) error

	// AddLikes moves the like counter by delta, clamped at zero.
	// Returns ErrNotFound if the artifact vanished, e.g. a racing delete.
	AddLikes(ctx context.Context, id int64, delta int64) error

	// ToggleLike flips the like state for (artifactID, userID) and adjusts
	// the counter in one atomic unit of work. The returned LikeCount is read
	// back from the artifact row inside that unit, never derived locally.
	ToggleLike(ctx context.Context, artifactID int64, userID string) (ToggleResult, error)

	// RecountLikes rewrites the like counter of each artifact from the
	// actual number of like rows, repairing any drift.
	RecountLikes(ctx context.Context, artifactIDs []int64) error
}

// ArtifactCache caches kind-scoped feeds in front of the repository.
type ArtifactCache interface {
	// GetFeed returns the cached feed for a kind.
	// Returns ErrCacheMiss when nothing is cached.
	GetFeed(ctx context.Context, kind Kind) ([]Artifact, error)

	// SetFeed stores a feed snapshot with a short TTL.
	SetFeed(ctx context.Context, kind Kind, artifacts []Artifact) error

	// InvalidateFeed drops the cached feed for a kind.
	InvalidateFeed(ctx context.Context, kind Kind) error
}

// ArtifactUsecase defines the business logic contract for the artifact store.
type ArtifactUsecase interface {
	// Create validates and persists a new artifact.
	// Returns ErrBadParamInput when ownerID, kind or payload is missing or malformed.
	Create(ctx context.Context, ownerID string, kind Kind, payload json.RawMessage) (Artifact, error)

	// Fetch lists all artifacts of a kind ordered by creation time descending.
	Fetch(ctx context.Context, kind Kind) ([]Artifact, error)

	// GetByID retrieves one artifact. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (Artifact, error)

	// ReplacePayload replaces the payload wholesale.
	ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (Artifact, error)

	// Delete removes an artifact together with its like rows.
	Delete(ctx context.Context, id int64) error
}
