package request

import (
	"encoding/json"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("artifactkind", func(fl validator.FieldLevel) bool {
			return domain.Kind(fl.Field().String()).Valid()
		})
	}
}

// StoreArtifact is the create request body. OwnerID may be omitted when the
// request carries a verified bearer token; the token subject wins either way.
type StoreArtifact struct {
	OwnerID string          `json:"ownerId"`
	Kind    string          `json:"kind" binding:"required,artifactkind"`
	Payload json.RawMessage `json:"payload"`
}

type ReplacePayload struct {
	Payload json.RawMessage `json:"payload"`
}

type ToggleLike struct {
	UserID string `json:"userId"`
}
