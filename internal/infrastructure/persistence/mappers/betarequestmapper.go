package mappers

import (
	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/infrastructure/persistence/models"
)

// BetaRequestMapper handles the conversion between BetaRequest domain
// entities and persistence models.
type BetaRequestMapper interface {
	ToModel(r *betarequest.BetaRequest) *models.BetaRequestModel
	ToDomain(model *models.BetaRequestModel) (*betarequest.BetaRequest, error)
}

type betaRequestMapperImpl struct{}

func NewBetaRequestMapper() BetaRequestMapper {
	return &betaRequestMapperImpl{}
}

func (m *betaRequestMapperImpl) ToModel(r *betarequest.BetaRequest) *models.BetaRequestModel {
	model := &models.BetaRequestModel{
		ID:        r.ID(),
		SID:       r.SID(),
		Name:      r.Name(),
		Email:     r.Email(),
		Note:      r.Note(),
		Status:    r.Status().String(),
		AccountID: r.AccountID(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}

	if r.ReviewedAt() != nil {
		reviewed := r.ReviewedAt().UnixMilli()
		model.ReviewedAt = &reviewed
	}

	return model
}

func (m *betaRequestMapperImpl) ToDomain(model *models.BetaRequestModel) (*betarequest.BetaRequest, error) {
	status, ok := vo.NewRequestStatus(model.Status)
	if !ok {
		return nil, invalidFieldError("beta request", model.ID, "status", model.Status)
	}

	var reviewedAt = millisToTimePtr(model.ReviewedAt)

	return betarequest.ReconstructBetaRequest(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		model.Note,
		status,
		model.AccountID,
		millisToTime(model.CreatedAt),
		reviewedAt,
		millisToTime(model.UpdatedAt),
	)
}
