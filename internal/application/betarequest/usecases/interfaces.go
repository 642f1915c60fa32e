package usecases

import (
	"context"

	"dropcircle/internal/application/betarequest/dto"
)

// RequestNotifier sends operator and requester email. Implemented by the
// SMTP service; notifications are fire-and-forget and never fail the
// originating operation.
type RequestNotifier interface {
	SendNewRequestNotification(name, requestEmail, note string) error
	SendApprovalEmail(to, name string) error
}

// Sanitizer strips markup from free text before it is stored.
type Sanitizer interface {
	PlainText(input string) string
}

type SubmitRequestExecutor interface {
	Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error)
}

type ReviewRequestExecutor interface {
	Execute(ctx context.Context, cmd ReviewRequestCommand) (*ReviewRequestResult, error)
}

type UpdateNoteExecutor interface {
	Execute(ctx context.Context, cmd UpdateNoteCommand) error
}

type ProvisionAccountExecutor interface {
	Execute(ctx context.Context, cmd ProvisionAccountCommand) (*ProvisionAccountResult, error)
}

type GetRequestByEmailExecutor interface {
	Execute(ctx context.Context, query GetRequestByEmailQuery) (*dto.BetaRequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.BetaRequestDTO, error)
}
