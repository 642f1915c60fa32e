package usecases

import (
	"context"

	"dropcircle/internal/application/circle/dto"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type ListCirclesQuery struct {
	AccountID string
}

type ListCirclesUseCase struct {
	circleRepo circle.Repository
	logger     logger.Interface
}

func NewListCirclesUseCase(
	circleRepo circle.Repository,
	logger logger.Interface,
) *ListCirclesUseCase {
	return &ListCirclesUseCase{
		circleRepo: circleRepo,
		logger:     logger,
	}
}

func (uc *ListCirclesUseCase) Execute(ctx context.Context, query ListCirclesQuery) ([]*dto.CircleDTO, error) {
	if query.AccountID == "" {
		return nil, errors.NewUnauthorizedError("account is required")
	}

	circles, err := uc.circleRepo.ListByOwner(ctx, query.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to list circles", "error", err)
		return nil, err
	}

	return dto.ToCircleDTOs(circles), nil
}
