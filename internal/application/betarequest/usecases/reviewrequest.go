package usecases

import (
	"context"
	"time"

	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/goroutine"
	"dropcircle/internal/shared/logger"
)

type ReviewRequestCommand struct {
	RequestID string
	Decision  string
}

type ReviewRequestResult struct {
	RequestID  string
	Status     string
	ReviewedAt time.Time
}

// ReviewRequestUseCase applies an operator decision. Re-applying the current
// decision succeeds and restamps the reviewed timestamp; reversal in either
// direction is an intended operator override.
type ReviewRequestUseCase struct {
	requestRepo betarequest.Repository
	notifier    RequestNotifier
	logger      logger.Interface
}

func NewReviewRequestUseCase(
	requestRepo betarequest.Repository,
	notifier RequestNotifier,
	logger logger.Interface,
) *ReviewRequestUseCase {
	return &ReviewRequestUseCase{
		requestRepo: requestRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ReviewRequestUseCase) Execute(ctx context.Context, cmd ReviewRequestCommand) (*ReviewRequestResult, error) {
	uc.logger.Infow("executing review request use case", "request_id", cmd.RequestID, "decision", cmd.Decision)

	decision, ok := vo.NewRequestStatus(cmd.Decision)
	if !ok || !decision.IsDecision() {
		return nil, errors.NewValidationError("decision must be approved or denied")
	}

	request, err := uc.requestRepo.FindBySID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	wasApproved := request.Status().IsApproved()

	if err := request.Review(decision); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update beta request", "error", err)
		return nil, err
	}

	uc.logger.Infow("beta request reviewed",
		"request_id", request.SID(),
		"status", request.Status().String())

	if uc.notifier != nil && decision.IsApproved() && !wasApproved {
		goroutine.SafeGo(uc.logger, "notify-approval", func() {
			if err := uc.notifier.SendApprovalEmail(request.Email(), request.Name()); err != nil {
				uc.logger.Warnw("failed to send approval email", "error", err)
			}
		})
	}

	return &ReviewRequestResult{
		RequestID:  request.SID(),
		Status:     request.Status().String(),
		ReviewedAt: *request.ReviewedAt(),
	}, nil
}
