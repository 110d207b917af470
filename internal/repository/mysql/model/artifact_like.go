package model

import (
	"time"

	"github.com/adesai47/aaditya-social-media-site/domain"
)

// ArtifactLike carries the unique index the whole toggle mechanism relies
// on: a concurrent duplicate insert fails at the database, not in memory.
type ArtifactLike struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ArtifactID int64     `gorm:"column:artifact_id;not null;uniqueIndex:uq_artifact_user"`
	UserID     string    `gorm:"column:user_id;type:varchar(191);not null;uniqueIndex:uq_artifact_user"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (ArtifactLike) TableName() string {
	return "artifact_likes"
}

func (m *ArtifactLike) ToDomain() domain.ArtifactLike {
	return domain.ArtifactLike{
		ID:         m.ID,
		ArtifactID: m.ArtifactID,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
	}
}
