package usecases

import (
	"context"

	"dropcircle/internal/application/circle/dto"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type SetLiveCommand struct {
	CircleID  string
	AccountID string
	Live      bool
}

// SetLiveUseCase flips the reachability gate. The write goes straight to the
// store with no cache in front, so a successful return means the next
// resolve observes the new state. Concurrent flips are last-writer-wins.
type SetLiveUseCase struct {
	circleRepo circle.Repository
	logger     logger.Interface
}

func NewSetLiveUseCase(
	circleRepo circle.Repository,
	logger logger.Interface,
) *SetLiveUseCase {
	return &SetLiveUseCase{
		circleRepo: circleRepo,
		logger:     logger,
	}
}

func (uc *SetLiveUseCase) Execute(ctx context.Context, cmd SetLiveCommand) (*dto.CircleDTO, error) {
	uc.logger.Infow("executing set live use case", "circle_id", cmd.CircleID, "live", cmd.Live)

	c, err := uc.circleRepo.FindBySID(ctx, cmd.CircleID)
	if err != nil {
		return nil, err
	}

	if !c.IsOwnedBy(cmd.AccountID) {
		uc.logger.Warnw("set live by non-owner", "circle_id", cmd.CircleID, "account_id", cmd.AccountID)
		return nil, errors.NewForbiddenError("circle is owned by another account")
	}

	c.SetLive(cmd.Live)

	if err := uc.circleRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update circle", "error", err)
		return nil, err
	}

	uc.logger.Infow("circle live state changed", "circle_id", c.SID(), "live", c.IsLive())
	return dto.ToCircleDTO(c), nil
}
