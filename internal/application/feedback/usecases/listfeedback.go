package usecases

import (
	"context"

	"dropcircle/internal/application/feedback/dto"
	"dropcircle/internal/domain/feedback"
	"dropcircle/internal/shared/logger"
)

const defaultListLimit = 100

type ListFeedbackQuery struct {
	// TargetID narrows to one content target; empty returns recent feedback
	// across all targets.
	TargetID string
	Limit    int
}

// ListFeedbackUseCase is the operator read of collected reactions.
type ListFeedbackUseCase struct {
	feedbackRepo feedback.Repository
	logger       logger.Interface
}

func NewListFeedbackUseCase(
	feedbackRepo feedback.Repository,
	logger logger.Interface,
) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, query ListFeedbackQuery) ([]*dto.FeedbackDTO, error) {
	limit := query.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	var (
		items []*feedback.Feedback
		err   error
	)
	if query.TargetID != "" {
		items, err = uc.feedbackRepo.ListByTarget(ctx, query.TargetID, limit)
	} else {
		items, err = uc.feedbackRepo.ListRecent(ctx, limit)
	}
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "error", err)
		return nil, err
	}

	return dto.ToFeedbackDTOs(items), nil
}
