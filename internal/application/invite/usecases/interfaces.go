package usecases

import "context"

type ResolveInviteExecutor interface {
	Execute(ctx context.Context, query ResolveInviteQuery) (*ResolveInviteResult, error)
}
