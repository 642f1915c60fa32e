package artifact

import "context"

// Repository persists Artifact aggregates. Artifacts are add-only; their
// insertion order is meaningful for display, so ListByCircleID returns
// creation order.
type Repository interface {
	Save(ctx context.Context, a *Artifact) error
	ListByCircleID(ctx context.Context, circleID uint) ([]*Artifact, error)
	// CountByCircleIDs returns per-circle artifact counts keyed by circle
	// id. Circles with no artifacts have no entry.
	CountByCircleIDs(ctx context.Context, circleIDs []uint) (map[uint]int64, error)
}
