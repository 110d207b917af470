package model

import (
	"encoding/json"
	"time"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

type Artifact struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID   string    `gorm:"column:owner_id;type:varchar(191);not null"`
	Kind      string    `gorm:"type:varchar(16);not null;index"`
	Payload   []byte    `gorm:"type:json;not null"`
	LikeCount int64     `gorm:"column:like_count;not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Artifact) TableName() string {
	return "artifact"
}

func (m *Artifact) ToDomain() domain.Artifact {
	return domain.Artifact{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Kind:      domain.Kind(m.Kind),
		Payload:   json.RawMessage(m.Payload),
		LikeCount: m.LikeCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewArtifactFromDomain(a *domain.Artifact) *Artifact {
	return &Artifact{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Kind:      string(a.Kind),
		Payload:   []byte(a.Payload),
		LikeCount: a.LikeCount,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
