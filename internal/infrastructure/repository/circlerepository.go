package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dropcircle/internal/domain/circle"
	"dropcircle/internal/infrastructure/persistence/mappers"
	"dropcircle/internal/infrastructure/persistence/models"
	db "dropcircle/internal/shared/db"
	apperrors "dropcircle/internal/shared/errors"
)

type CircleRepository struct {
	db     *gorm.DB
	mapper mappers.CircleMapper
}

func NewCircleRepository(database *gorm.DB) *CircleRepository {
	return &CircleRepository{
		db:     database,
		mapper: mappers.NewCircleMapper(),
	}
}

func (r *CircleRepository) Save(ctx context.Context, c *circle.Circle) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewTransientError("failed to save circle", err.Error())
	}

	return c.SetID(model.ID)
}

func (r *CircleRepository) Update(ctx context.Context, c *circle.Circle) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CircleModel{}).
		Where("id = ?", model.ID).
		Select("Title", "Live", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return apperrors.NewTransientError("failed to update circle", result.Error.Error())
	}

	return nil
}

func (r *CircleRepository) FindBySID(ctx context.Context, sid string) (*circle.Circle, error) {
	var model models.CircleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("circle not found")
		}
		return nil, apperrors.NewTransientError("failed to find circle", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *CircleRepository) ListByOwner(ctx context.Context, ownerAccountID string) ([]*circle.Circle, error) {
	var rows []models.CircleModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("owner_account_id = ?", ownerAccountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewTransientError("failed to list circles", err.Error())
	}

	circles := make([]*circle.Circle, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		circles = append(circles, c)
	}

	return circles, nil
}

func (r *CircleRepository) CountByOwner(ctx context.Context, ownerAccountID string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.CircleModel{}).
		Where("owner_account_id = ?", ownerAccountID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.NewTransientError("failed to count circles", err.Error())
	}

	return count, nil
}

// CountByOwnerForUpdate takes a locking read over the owner's circle rows.
// Inside a transaction this serializes concurrent creates for the same
// owner, so the quota check and the insert behave as one atomic step.
func (r *CircleRepository) CountByOwnerForUpdate(ctx context.Context, ownerAccountID string) (int64, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.CircleModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_account_id = ?", ownerAccountID).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, apperrors.NewTransientError("failed to count circles", err.Error())
	}

	return int64(len(ids)), nil
}
