package usecases

import (
	"context"

	"dropcircle/internal/application/betarequest/dto"
	"dropcircle/internal/domain/betarequest"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type GetRequestByEmailQuery struct {
	Email string
}

// GetRequestByEmailUseCase is an operator-only lookup, so a miss is a plain
// not-found here, unlike the public note update.
type GetRequestByEmailUseCase struct {
	requestRepo betarequest.Repository
	logger      logger.Interface
}

func NewGetRequestByEmailUseCase(
	requestRepo betarequest.Repository,
	logger logger.Interface,
) *GetRequestByEmailUseCase {
	return &GetRequestByEmailUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestByEmailUseCase) Execute(ctx context.Context, query GetRequestByEmailQuery) (*dto.BetaRequestDTO, error) {
	request, err := uc.requestRepo.FindByEmail(ctx, query.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up beta request", "error", err)
		return nil, err
	}
	if request == nil {
		return nil, errors.NewNotFoundError("beta request not found")
	}

	return dto.ToBetaRequestDTO(request), nil
}
