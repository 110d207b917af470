package mysql

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/adesai47/aaditya-social-media-site/domain"
	"github.com/adesai47/aaditya-social-media-site/internal/repository/mysql/model"
)

type artifactRepository struct {
	DB *gorm.DB
}

// mysql layer only performs database operations
var _ domain.ArtifactRepository = (*artifactRepository)(nil)

// NewArtifactDBRepository creates the database operation layer
func NewArtifactDBRepository(db *gorm.DB) *artifactRepository {
	return &artifactRepository{db}
}

func (m *artifactRepository) Store(ctx context.Context, a *domain.Artifact) error {
	artifactModel := model.NewArtifactFromDomain(a)
	artifactModel.LikeCount = 0
	result := m.DB.WithContext(ctx).Create(artifactModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = artifactModel.ID
	a.LikeCount = artifactModel.LikeCount
	a.CreatedAt = artifactModel.CreatedAt
	a.UpdatedAt = artifactModel.UpdatedAt
	return nil
}

func (m *artifactRepository) Fetch(ctx context.Context, kind domain.Kind) ([]domain.Artifact, error) {
	var artifacts []model.Artifact
	err := m.DB.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("created_at desc").
		Find(&artifacts).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Artifact, len(artifacts))
	for i := range artifacts {
		res[i] = artifacts[i].ToDomain()
	}
	return res, nil
}

func (m *artifactRepository) GetByID(ctx context.Context, id int64) (domain.Artifact, error) {
	var artifact model.Artifact
	err := m.DB.WithContext(ctx).First(&artifact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Artifact{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Artifact{}, err
	}
	return artifact.ToDomain(), nil
}

// ReplacePayload swaps the stored payload wholesale. The previous value is
// never read, so no partial merge can occur.
func (m *artifactRepository) ReplacePayload(ctx context.Context, id int64, payload json.RawMessage) (domain.Artifact, error) {
	result := m.DB.WithContext(ctx).
		Model(&model.Artifact{}).
		Where("id = ?", id).
		Updates(map[string]any{"payload": []byte(payload)})
	if result.Error != nil {
		return domain.Artifact{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Artifact{}, domain.ErrNotFound
	}
	return m.GetByID(ctx, id)
}

// Delete removes the artifact and its like rows in one transaction, so no
// like row can outlive the artifact it references.
func (m *artifactRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Artifact{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("artifact_id = ?", id).Delete(&model.ArtifactLike{}).Error
	})
}

func (m *artifactRepository) AddLikes(ctx context.Context, id int64, delta int64) error {
	return addLikes(m.DB.WithContext(ctx), id, delta)
}

// addLikes applies a relative delta clamped at zero. Deltas, not
// read-modify-write, so concurrent writers cannot lose updates.
func addLikes(tx *gorm.DB, id int64, delta int64) error {
	result := tx.Model(&model.Artifact{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleLike flips the like state of (artifactID, userID) and moves the
// counter inside a single transaction. The unique index on the like table
// serializes concurrent toggles of the same pair; losing the insert race
// collapses to liked=true without a second increment.
func (m *artifactRepository) ToggleLike(ctx context.Context, artifactID int64, userID string) (domain.ToggleResult, error) {
	var res domain.ToggleResult
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Artifact{}).Where("id = ?", artifactID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		removed := tx.Where("artifact_id = ? AND user_id = ?", artifactID, userID).
			Delete(&model.ArtifactLike{})
		if removed.Error != nil {
			return removed.Error
		}

		if removed.RowsAffected > 0 {
			res.Liked = false
			if err := addLikes(tx, artifactID, -1); err != nil {
				return err
			}
		} else {
			like := model.ArtifactLike{ArtifactID: artifactID, UserID: userID}
			err := tx.Create(&like).Error
			switch {
			case err == nil:
				res.Liked = true
				if err := addLikes(tx, artifactID, 1); err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrDuplicatedKey):
				// a concurrent toggle inserted the row first; the pair is
				// liked either way and that toggle owns the increment
				res.Liked = true
			default:
				return err
			}
		}

		var artifact model.Artifact
		if err := tx.Select("like_count").First(&artifact, "id = ?", artifactID).Error; err != nil {
			return domain.ErrNotFound
		}
		res.LikeCount = artifact.LikeCount
		return nil
	})
	if err != nil {
		return domain.ToggleResult{}, err
	}
	return res, nil
}

// RecountLikes rewrites each artifact's counter from the actual number of
// like rows. Artifacts deleted since being enqueued are skipped.
func (m *artifactRepository) RecountLikes(ctx context.Context, artifactIDs []int64) error {
	if len(artifactIDs) == 0 {
		return nil
	}
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range artifactIDs {
			var realCount int64
			if err := tx.Model(&model.ArtifactLike{}).
				Where("artifact_id = ?", id).
				Count(&realCount).Error; err != nil {
				return err
			}

			if err := tx.Model(&model.Artifact{}).
				Where("id = ?", id).
				UpdateColumn("like_count", realCount).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
