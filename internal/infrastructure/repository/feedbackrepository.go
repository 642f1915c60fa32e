package repository

import (
	"context"

	"gorm.io/gorm"

	"dropcircle/internal/domain/feedback"
	"dropcircle/internal/infrastructure/persistence/mappers"
	"dropcircle/internal/infrastructure/persistence/models"
	db "dropcircle/internal/shared/db"
	apperrors "dropcircle/internal/shared/errors"
)

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     database,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, fb *feedback.Feedback) error {
	model := r.mapper.ToModel(fb)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewTransientError("failed to save feedback", err.Error())
	}

	return fb.SetID(model.ID)
}

func (r *FeedbackRepository) ListByTarget(ctx context.Context, targetID string, limit int) ([]*feedback.Feedback, error) {
	var rows []models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("target_id = ?", targetID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list feedback", err.Error())
	}

	return r.toDomainList(rows)
}

func (r *FeedbackRepository) ListRecent(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
	var rows []models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list feedback", err.Error())
	}

	return r.toDomainList(rows)
}

func (r *FeedbackRepository) toDomainList(rows []models.FeedbackModel) ([]*feedback.Feedback, error) {
	items := make([]*feedback.Feedback, 0, len(rows))
	for i := range rows {
		fb, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	return items, nil
}
