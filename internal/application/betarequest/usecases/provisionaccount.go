package usecases

import (
	"context"
	"strings"

	"dropcircle/internal/domain/betarequest"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type ProvisionAccountCommand struct {
	RequestID string
	AccountID string
}

type ProvisionAccountResult struct {
	RequestID string
	AccountID string
}

// ProvisionAccountUseCase links an approved request to its externally issued
// account identifier. The identity provider creates the credentials; this
// records that the linkage happened. Anything but an approved request is an
// invalid-state error, including pending and denied ones.
type ProvisionAccountUseCase struct {
	requestRepo betarequest.Repository
	logger      logger.Interface
}

func NewProvisionAccountUseCase(
	requestRepo betarequest.Repository,
	logger logger.Interface,
) *ProvisionAccountUseCase {
	return &ProvisionAccountUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ProvisionAccountUseCase) Execute(ctx context.Context, cmd ProvisionAccountCommand) (*ProvisionAccountResult, error) {
	uc.logger.Infow("executing provision account use case", "request_id", cmd.RequestID)

	accountID := strings.TrimSpace(cmd.AccountID)
	if accountID == "" {
		return nil, errors.NewValidationError("account ID is required")
	}

	request, err := uc.requestRepo.FindBySID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if !request.Status().IsApproved() {
		return nil, errors.NewInvalidStateError("only approved requests can be provisioned")
	}

	if err := request.Provision(accountID); err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update beta request", "error", err)
		return nil, err
	}

	uc.logger.Infow("account provisioned",
		"request_id", request.SID(),
		"account_id", request.AccountID())

	return &ProvisionAccountResult{
		RequestID: request.SID(),
		AccountID: request.AccountID(),
	}, nil
}
