package circle

import "context"

// Repository persists Circle aggregates.
//
// The quota invariant (at most MaxPerAccount circles per owner) is enforced
// by the create use case running CountByOwnerForUpdate and Save inside one
// transaction. CountByOwnerForUpdate must take a locking read over the
// owner's rows so two concurrent creates against the same account serialize
// instead of both passing the check.
type Repository interface {
	Save(ctx context.Context, c *Circle) error
	Update(ctx context.Context, c *Circle) error
	FindBySID(ctx context.Context, sid string) (*Circle, error)
	// ListByOwner returns the owner's circles newest first.
	ListByOwner(ctx context.Context, ownerAccountID string) ([]*Circle, error)
	CountByOwner(ctx context.Context, ownerAccountID string) (int64, error)
	// CountByOwnerForUpdate is CountByOwner with a FOR UPDATE lock; only
	// meaningful inside a transaction.
	CountByOwnerForUpdate(ctx context.Context, ownerAccountID string) (int64, error)
}
