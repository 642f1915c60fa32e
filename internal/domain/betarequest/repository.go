package betarequest

import (
	"context"

	vo "dropcircle/internal/domain/betarequest/valueobjects"
)

// Repository persists BetaRequest aggregates. Save must rely on the store's
// unique index over the normalized email so that concurrent submissions of
// the same address yield exactly one success; the losing writes surface as a
// duplicate-request error, distinct from other storage failures.
type Repository interface {
	Save(ctx context.Context, r *BetaRequest) error
	Update(ctx context.Context, r *BetaRequest) error
	FindBySID(ctx context.Context, sid string) (*BetaRequest, error)
	FindByEmail(ctx context.Context, email string) (*BetaRequest, error)
	FindByAccountID(ctx context.Context, accountID string) (*BetaRequest, error)
	// List returns requests newest first. A nil status means all statuses.
	List(ctx context.Context, status *vo.RequestStatus) ([]*BetaRequest, error)
}
