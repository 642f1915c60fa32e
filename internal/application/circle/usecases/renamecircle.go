package usecases

import (
	"context"

	"dropcircle/internal/application/circle/dto"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type RenameCircleCommand struct {
	CircleID  string
	AccountID string
	Title     string
}

type RenameCircleUseCase struct {
	circleRepo circle.Repository
	logger     logger.Interface
}

func NewRenameCircleUseCase(
	circleRepo circle.Repository,
	logger logger.Interface,
) *RenameCircleUseCase {
	return &RenameCircleUseCase{
		circleRepo: circleRepo,
		logger:     logger,
	}
}

func (uc *RenameCircleUseCase) Execute(ctx context.Context, cmd RenameCircleCommand) (*dto.CircleDTO, error) {
	uc.logger.Infow("executing rename circle use case", "circle_id", cmd.CircleID)

	c, err := uc.circleRepo.FindBySID(ctx, cmd.CircleID)
	if err != nil {
		return nil, err
	}

	if !c.IsOwnedBy(cmd.AccountID) {
		uc.logger.Warnw("rename by non-owner", "circle_id", cmd.CircleID, "account_id", cmd.AccountID)
		return nil, errors.NewForbiddenError("circle is owned by another account")
	}

	if err := c.Rename(cmd.Title); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.circleRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update circle", "error", err)
		return nil, err
	}

	uc.logger.Infow("circle renamed", "circle_id", c.SID())
	return dto.ToCircleDTO(c), nil
}
