package repository

import (
	"context"

	"gorm.io/gorm"

	"dropcircle/internal/domain/artifact"
	"dropcircle/internal/infrastructure/persistence/mappers"
	"dropcircle/internal/infrastructure/persistence/models"
	db "dropcircle/internal/shared/db"
	apperrors "dropcircle/internal/shared/errors"
)

type ArtifactRepository struct {
	db     *gorm.DB
	mapper mappers.ArtifactMapper
}

func NewArtifactRepository(database *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{
		db:     database,
		mapper: mappers.NewArtifactMapper(),
	}
}

func (r *ArtifactRepository) Save(ctx context.Context, a *artifact.Artifact) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewTransientError("failed to save artifact", err.Error())
	}

	return a.SetID(model.ID)
}

// ListByCircleID returns artifacts in creation order, oldest first.
func (r *ArtifactRepository) ListByCircleID(ctx context.Context, circleID uint) ([]*artifact.Artifact, error) {
	var rows []models.ArtifactModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("circle_id = ?", circleID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list artifacts", err.Error())
	}

	artifacts := make([]*artifact.Artifact, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	return artifacts, nil
}

// CountByCircleIDs returns a map of circle id to artifact count for the
// operator dashboard. Missing circles simply have no entry.
func (r *ArtifactRepository) CountByCircleIDs(ctx context.Context, circleIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(circleIDs))
	if len(circleIDs) == 0 {
		return counts, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		CircleID uint
		Total    int64
	}
	err := tx.Model(&models.ArtifactModel{}).
		Select("circle_id, COUNT(*) AS total").
		Where("circle_id IN ?", circleIDs).
		Group("circle_id").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewTransientError("failed to count artifacts", err.Error())
	}

	for _, row := range rows {
		counts[row.CircleID] = row.Total
	}

	return counts, nil
}
