package domain

import (
	"context"
	"time"
)

// ArtifactLike is representing a like relationship row.
// At most one row may exist per (ArtifactID, UserID) pair; the storage
// layer enforces this with a unique index and is the single source of
// truth for whether a like exists.
type ArtifactLike struct {
	ID         int64
	ArtifactID int64
	UserID     string
	CreatedAt  time.Time
}

// ToggleResult is the outcome of a like toggle, carrying the authoritative
// counter the client reconciles its optimistic update against.
type ToggleResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// LikeUsecase defines the business logic contract for the like ledger.
type LikeUsecase interface {
	// Toggle flips the like state of userID toward artifactID.
	// Returns ErrBadParamInput when userID is empty and ErrNotFound when the
	// artifact doesn't exist. A toggle racing an identical one from the same
	// user collapses to the surviving state instead of erroring.
	Toggle(ctx context.Context, artifactID int64, userID string) (ToggleResult, error)
}
