package usecases

import (
	"context"
	"time"

	"dropcircle/internal/domain/betarequest"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/id"
	"dropcircle/internal/shared/logger"
)

type CreateCircleCommand struct {
	AccountID string
	Title     string
}

type CreateCircleResult struct {
	CircleID  string
	Title     string
	Live      bool
	CreatedAt time.Time
}

// CreateCircleUseCase creates an offline circle for an admitted visionary.
// The caller must map to an approved, provisioned beta request; holding a
// valid token is not enough, since approval can be reversed after
// provisioning. The quota check and the insert run in one transaction with
// a locking count, so two concurrent creates cannot both slip under the cap.
type CreateCircleUseCase struct {
	circleRepo  circle.Repository
	requestRepo betarequest.Repository
	tx          Transactor
	logger      logger.Interface
}

func NewCreateCircleUseCase(
	circleRepo circle.Repository,
	requestRepo betarequest.Repository,
	tx Transactor,
	logger logger.Interface,
) *CreateCircleUseCase {
	return &CreateCircleUseCase{
		circleRepo:  circleRepo,
		requestRepo: requestRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *CreateCircleUseCase) Execute(ctx context.Context, cmd CreateCircleCommand) (*CreateCircleResult, error) {
	uc.logger.Infow("executing create circle use case", "account_id", cmd.AccountID)

	if cmd.AccountID == "" {
		return nil, errors.NewUnauthorizedError("account is required")
	}

	request, err := uc.requestRepo.FindByAccountID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if request == nil || !request.Status().IsApproved() || !request.IsProvisioned() {
		uc.logger.Warnw("create circle by non-admitted account", "account_id", cmd.AccountID)
		return nil, errors.NewForbiddenError("account is not an admitted visionary")
	}

	sid, err := id.NewCircleID()
	if err != nil {
		uc.logger.Errorw("failed to generate circle ID", "error", err)
		return nil, errors.NewInternalError("failed to generate circle ID")
	}

	newCircle, err := circle.NewCircle(sid, cmd.Title, cmd.AccountID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.circleRepo.CountByOwnerForUpdate(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		if count >= circle.MaxPerAccount {
			return errors.NewQuotaExceededError("circle limit reached for this account")
		}

		return uc.circleRepo.Save(txCtx, newCircle)
	})
	if txErr != nil {
		if errors.IsQuotaExceededError(txErr) {
			uc.logger.Infow("circle quota exceeded", "account_id", cmd.AccountID)
		} else {
			uc.logger.Errorw("failed to create circle", "error", txErr)
		}
		return nil, txErr
	}

	uc.logger.Infow("circle created", "circle_id", newCircle.SID(), "account_id", cmd.AccountID)

	return &CreateCircleResult{
		CircleID:  newCircle.SID(),
		Title:     newCircle.Title(),
		Live:      newCircle.IsLive(),
		CreatedAt: newCircle.CreatedAt(),
	}, nil
}
