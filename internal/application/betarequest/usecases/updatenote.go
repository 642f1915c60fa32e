package usecases

import (
	"context"

	"dropcircle/internal/domain/betarequest"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type UpdateNoteCommand struct {
	Email string
	Note  string
}

// UpdateNoteUseCase replaces the requester note on the request matching the
// normalized email. When no request matches it succeeds silently: the
// endpoint is public, and a distinguishable miss would let anyone probe
// which addresses have applied.
type UpdateNoteUseCase struct {
	requestRepo betarequest.Repository
	sanitizer   Sanitizer
	logger      logger.Interface
}

func NewUpdateNoteUseCase(
	requestRepo betarequest.Repository,
	sanitizer Sanitizer,
	logger logger.Interface,
) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		requestRepo: requestRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *UpdateNoteUseCase) Execute(ctx context.Context, cmd UpdateNoteCommand) error {
	if len(cmd.Note) > betarequest.MaxNoteLength {
		return errors.NewValidationError("note exceeds maximum length")
	}

	request, err := uc.requestRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up beta request", "error", err)
		return err
	}
	if request == nil {
		// Intentionally indistinguishable from the matched case.
		uc.logger.Debugw("note update for unknown email ignored")
		return nil
	}

	if err := request.ReplaceNote(uc.sanitizer.PlainText(cmd.Note)); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update beta request note", "error", err)
		return err
	}

	uc.logger.Infow("beta request note updated", "request_id", request.SID())
	return nil
}
