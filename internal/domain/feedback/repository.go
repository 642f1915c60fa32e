package feedback

import "context"

// Repository persists Feedback. Write-once: there is no update or delete.
type Repository interface {
	Save(ctx context.Context, f *Feedback) error
	// ListByTarget returns feedback for one content target, newest first.
	ListByTarget(ctx context.Context, targetID string, limit int) ([]*Feedback, error)
	// ListRecent returns the most recent feedback across targets for the
	// operator view, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Feedback, error)
}
