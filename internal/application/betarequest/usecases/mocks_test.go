package usecases

import (
	"context"

	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
)

type mockBetaRequestRepository struct {
	SaveFunc            func(ctx context.Context, r *betarequest.BetaRequest) error
	UpdateFunc          func(ctx context.Context, r *betarequest.BetaRequest) error
	FindBySIDFunc       func(ctx context.Context, sid string) (*betarequest.BetaRequest, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*betarequest.BetaRequest, error)
	FindByAccountIDFunc func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error)
	ListFunc            func(ctx context.Context, status *vo.RequestStatus) ([]*betarequest.BetaRequest, error)
}

func (m *mockBetaRequestRepository) Save(ctx context.Context, r *betarequest.BetaRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockBetaRequestRepository) Update(ctx context.Context, r *betarequest.BetaRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockBetaRequestRepository) FindBySID(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockBetaRequestRepository) FindByEmail(ctx context.Context, email string) (*betarequest.BetaRequest, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockBetaRequestRepository) FindByAccountID(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
	if m.FindByAccountIDFunc != nil {
		return m.FindByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockBetaRequestRepository) List(ctx context.Context, status *vo.RequestStatus) ([]*betarequest.BetaRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, status)
	}
	return nil, nil
}

type mockNotifier struct {
	NewRequestFunc func(name, requestEmail, note string) error
	ApprovalFunc   func(to, name string) error

	newRequestCalls chan [3]string
	approvalCalls   chan [2]string
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		newRequestCalls: make(chan [3]string, 8),
		approvalCalls:   make(chan [2]string, 8),
	}
}

func (m *mockNotifier) SendNewRequestNotification(name, requestEmail, note string) error {
	if m.newRequestCalls != nil {
		m.newRequestCalls <- [3]string{name, requestEmail, note}
	}
	if m.NewRequestFunc != nil {
		return m.NewRequestFunc(name, requestEmail, note)
	}
	return nil
}

func (m *mockNotifier) SendApprovalEmail(to, name string) error {
	if m.approvalCalls != nil {
		m.approvalCalls <- [2]string{to, name}
	}
	if m.ApprovalFunc != nil {
		return m.ApprovalFunc(to, name)
	}
	return nil
}

// passthroughSanitizer returns input unchanged so tests can assert on exact
// stored values.
type passthroughSanitizer struct{}

func (passthroughSanitizer) PlainText(input string) string {
	return input
}
