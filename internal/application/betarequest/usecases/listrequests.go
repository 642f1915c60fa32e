package usecases

import (
	"context"

	"dropcircle/internal/application/betarequest/dto"
	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type ListRequestsQuery struct {
	// Status filters to one lifecycle status; empty means all.
	Status string
}

type ListRequestsUseCase struct {
	requestRepo betarequest.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo betarequest.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.BetaRequestDTO, error) {
	var status *vo.RequestStatus
	if query.Status != "" {
		parsed, ok := vo.NewRequestStatus(query.Status)
		if !ok {
			return nil, errors.NewValidationError("unknown status filter")
		}
		status = &parsed
	}

	requests, err := uc.requestRepo.List(ctx, status)
	if err != nil {
		uc.logger.Errorw("failed to list beta requests", "error", err)
		return nil, err
	}

	return dto.ToBetaRequestDTOs(requests), nil
}
