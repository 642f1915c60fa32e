package usecases

import (
	"context"
	"strings"
	"time"

	"dropcircle/internal/domain/feedback"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

type SubmitFeedbackCommand struct {
	TargetID    string
	TargetTitle string
	Thumbs      *string
	Rating      *int
	Comment     string
	FanName     string
	FanEmail    string
}

type SubmitFeedbackResult struct {
	FeedbackID uint
	CreatedAt  time.Time
}

// SubmitFeedbackUseCase records one fan reaction. A submission with no
// thumbs, no rating and a blank comment carries no signal and is rejected
// as empty. Over-length fields are rejected, not truncated. Write-once:
// nothing here updates or deletes.
type SubmitFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	sanitizer    Sanitizer
	logger       logger.Interface
}

func NewSubmitFeedbackUseCase(
	feedbackRepo feedback.Repository,
	sanitizer Sanitizer,
	logger logger.Interface,
) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	uc.logger.Infow("executing submit feedback use case", "target_id", cmd.TargetID)

	comment := uc.sanitizer.PlainText(cmd.Comment)

	if cmd.Thumbs == nil && cmd.Rating == nil && strings.TrimSpace(comment) == "" {
		return nil, errors.NewEmptySubmissionError("at least one of thumbs, rating or comment is required")
	}

	var thumbs *feedback.Thumbs
	if cmd.Thumbs != nil {
		t := feedback.Thumbs(*cmd.Thumbs)
		if !t.IsValid() {
			return nil, errors.NewValidationError("thumbs must be up or down")
		}
		thumbs = &t
	}

	fb, err := feedback.NewFeedback(
		cmd.TargetID,
		uc.sanitizer.PlainText(cmd.TargetTitle),
		thumbs,
		cmd.Rating,
		comment,
		uc.sanitizer.PlainText(cmd.FanName),
		strings.TrimSpace(cmd.FanEmail),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feedbackRepo.Save(ctx, fb); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback recorded", "feedback_id", fb.ID(), "target_id", fb.TargetID())

	return &SubmitFeedbackResult{
		FeedbackID: fb.ID(),
		CreatedAt:  fb.CreatedAt(),
	}, nil
}
