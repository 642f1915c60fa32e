package usecases

import (
	"context"
	"strings"
	"time"

	"dropcircle/internal/domain/betarequest"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/goroutine"
	"dropcircle/internal/shared/id"
	"dropcircle/internal/shared/logger"
)

type SubmitRequestCommand struct {
	Name  string
	Email string
	Note  string
}

type SubmitRequestResult struct {
	RequestID string
	Status    string
	CreatedAt time.Time
}

// SubmitRequestUseCase records a new beta request. The duplicate-email
// invariant is settled by the store's unique index, so two concurrent
// submissions of the same address cannot both succeed. The operator
// notification is fire-and-forget; a dead SMTP server never loses a request.
type SubmitRequestUseCase struct {
	requestRepo betarequest.Repository
	notifier    RequestNotifier
	sanitizer   Sanitizer
	logger      logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo betarequest.Repository,
	notifier RequestNotifier,
	sanitizer Sanitizer,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo: requestRepo,
		notifier:    notifier,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	uc.logger.Infow("executing submit request use case", "email", betarequest.NormalizeEmail(cmd.Email))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid submit request command", "error", err)
		return nil, err
	}

	sid, err := id.NewBetaRequestID()
	if err != nil {
		uc.logger.Errorw("failed to generate request ID", "error", err)
		return nil, errors.NewInternalError("failed to generate request ID")
	}

	note := uc.sanitizer.PlainText(cmd.Note)
	name := uc.sanitizer.PlainText(cmd.Name)

	request, err := betarequest.NewBetaRequest(sid, name, cmd.Email, note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		if errors.IsDuplicateRequestError(err) {
			uc.logger.Infow("duplicate beta request", "email", request.Email())
		} else {
			uc.logger.Errorw("failed to save beta request", "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("beta request submitted", "request_id", request.SID())

	if uc.notifier != nil {
		goroutine.SafeGo(uc.logger, "notify-new-request", func() {
			if err := uc.notifier.SendNewRequestNotification(request.Name(), request.Email(), request.Note()); err != nil {
				uc.logger.Warnw("failed to send new request notification", "error", err)
			}
		})
	}

	return &SubmitRequestResult{
		RequestID: request.SID(),
		Status:    request.Status().String(),
		CreatedAt: request.CreatedAt(),
	}, nil
}

func (uc *SubmitRequestUseCase) validateCommand(cmd SubmitRequestCommand) error {
	name := strings.TrimSpace(cmd.Name)
	if len(name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(name) > betarequest.MaxNameLength {
		return errors.NewValidationError("name exceeds maximum length")
	}

	email := betarequest.NormalizeEmail(cmd.Email)
	if len(email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(email) > betarequest.MaxEmailLength || !strings.Contains(email, "@") {
		return errors.NewValidationError("email is malformed")
	}

	if len(cmd.Note) > betarequest.MaxNoteLength {
		return errors.NewValidationError("note exceeds maximum length")
	}

	return nil
}
