package response

import (
	"encoding/json"
	"time"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

type Artifact struct {
	ID        int64           `json:"id"`
	OwnerID   string          `json:"ownerId"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	LikeCount int64           `json:"likeCount"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// NewArtifactFromDomain: Domain -> Response. The payload is passed through
// untouched so it round-trips byte-for-byte.
func NewArtifactFromDomain(a *domain.Artifact) Artifact {
	return Artifact{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Kind:      string(a.Kind),
		Payload:   a.Payload,
		LikeCount: a.LikeCount,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
