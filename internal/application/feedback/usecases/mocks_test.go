package usecases

import (
	"context"

	"dropcircle/internal/domain/feedback"
)

type mockFeedbackRepository struct {
	SaveFunc         func(ctx context.Context, f *feedback.Feedback) error
	ListByTargetFunc func(ctx context.Context, targetID string, limit int) ([]*feedback.Feedback, error)
	ListRecentFunc   func(ctx context.Context, limit int) ([]*feedback.Feedback, error)
}

func (m *mockFeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) ListByTarget(ctx context.Context, targetID string, limit int) ([]*feedback.Feedback, error) {
	if m.ListByTargetFunc != nil {
		return m.ListByTargetFunc(ctx, targetID, limit)
	}
	return nil, nil
}

func (m *mockFeedbackRepository) ListRecent(ctx context.Context, limit int) ([]*feedback.Feedback, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

// passthroughSanitizer returns input unchanged so tests can assert on exact
// stored values.
type passthroughSanitizer struct{}

func (passthroughSanitizer) PlainText(input string) string {
	return input
}

// strippingSanitizer simulates markup removal by replacing everything.
type strippingSanitizer struct {
	replacement string
}

func (s strippingSanitizer) PlainText(input string) string {
	return s.replacement
}
