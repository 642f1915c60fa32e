package usecases

import (
	"context"

	"dropcircle/internal/application/feedback/dto"
)

// Sanitizer strips markup from fan-supplied free text before storage.
type Sanitizer interface {
	PlainText(input string) string
}

type SubmitFeedbackExecutor interface {
	Execute(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error)
}

type ListFeedbackExecutor interface {
	Execute(ctx context.Context, query ListFeedbackQuery) ([]*dto.FeedbackDTO, error)
}
