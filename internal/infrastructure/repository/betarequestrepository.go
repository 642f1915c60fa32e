package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/infrastructure/persistence/mappers"
	"dropcircle/internal/infrastructure/persistence/models"
	db "dropcircle/internal/shared/db"
	apperrors "dropcircle/internal/shared/errors"
)

type BetaRequestRepository struct {
	db     *gorm.DB
	mapper mappers.BetaRequestMapper
}

func NewBetaRequestRepository(database *gorm.DB) *BetaRequestRepository {
	return &BetaRequestRepository{
		db:     database,
		mapper: mappers.NewBetaRequestMapper(),
	}
}

// Save inserts a new request. The unique index over the normalized email
// decides races between concurrent submissions of the same address; the
// duplicate-key error is surfaced as a distinct duplicate-request condition
// so callers can render "you're already on the list".
func (r *BetaRequestRepository) Save(ctx context.Context, req *betarequest.BetaRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateKeyError(err) {
			return apperrors.NewDuplicateRequestError("a request with this email already exists")
		}
		return apperrors.NewTransientError("failed to save beta request", err.Error())
	}

	return req.SetID(model.ID)
}

func (r *BetaRequestRepository) Update(ctx context.Context, req *betarequest.BetaRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BetaRequestModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Note", "Status", "AccountID", "ReviewedAt", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return apperrors.NewTransientError("failed to update beta request", result.Error.Error())
	}

	return nil
}

func (r *BetaRequestRepository) FindBySID(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
	var model models.BetaRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("beta request not found")
		}
		return nil, apperrors.NewTransientError("failed to find beta request", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

// FindByEmail normalizes before lookup. A missing record returns (nil, nil)
// rather than an error: append-note deliberately cannot distinguish between
// a matched and unmatched email, and other callers check for nil.
func (r *BetaRequestRepository) FindByEmail(ctx context.Context, email string) (*betarequest.BetaRequest, error) {
	var model models.BetaRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("email = ?", betarequest.NormalizeEmail(email)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewTransientError("failed to find beta request", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *BetaRequestRepository) FindByAccountID(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
	var model models.BetaRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("account_id = ? AND account_id <> ''", accountID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewTransientError("failed to find beta request", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *BetaRequestRepository) List(ctx context.Context, status *vo.RequestStatus) ([]*betarequest.BetaRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BetaRequestModel{})

	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var rows []models.BetaRequestModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, apperrors.NewTransientError("failed to list beta requests", err.Error())
	}

	requests := make([]*betarequest.BetaRequest, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
