package usecases

import (
	"context"

	"dropcircle/internal/application/circle/dto"
)

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager; an interface here so tests can fake it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateCircleExecutor interface {
	Execute(ctx context.Context, cmd CreateCircleCommand) (*CreateCircleResult, error)
}

type RenameCircleExecutor interface {
	Execute(ctx context.Context, cmd RenameCircleCommand) (*dto.CircleDTO, error)
}

type SetLiveExecutor interface {
	Execute(ctx context.Context, cmd SetLiveCommand) (*dto.CircleDTO, error)
}

type ListCirclesExecutor interface {
	Execute(ctx context.Context, query ListCirclesQuery) ([]*dto.CircleDTO, error)
}
