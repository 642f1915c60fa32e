package usecases

import (
	"context"
	"time"

	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/domain/circle"
)

type mockCircleRepository struct {
	SaveFunc                  func(ctx context.Context, c *circle.Circle) error
	UpdateFunc                func(ctx context.Context, c *circle.Circle) error
	FindBySIDFunc             func(ctx context.Context, sid string) (*circle.Circle, error)
	ListByOwnerFunc           func(ctx context.Context, ownerAccountID string) ([]*circle.Circle, error)
	CountByOwnerFunc          func(ctx context.Context, ownerAccountID string) (int64, error)
	CountByOwnerForUpdateFunc func(ctx context.Context, ownerAccountID string) (int64, error)
}

func (m *mockCircleRepository) Save(ctx context.Context, c *circle.Circle) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCircleRepository) Update(ctx context.Context, c *circle.Circle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCircleRepository) FindBySID(ctx context.Context, sid string) (*circle.Circle, error) {
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCircleRepository) ListByOwner(ctx context.Context, ownerAccountID string) ([]*circle.Circle, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerAccountID)
	}
	return nil, nil
}

func (m *mockCircleRepository) CountByOwner(ctx context.Context, ownerAccountID string) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerAccountID)
	}
	return 0, nil
}

func (m *mockCircleRepository) CountByOwnerForUpdate(ctx context.Context, ownerAccountID string) (int64, error) {
	if m.CountByOwnerForUpdateFunc != nil {
		return m.CountByOwnerForUpdateFunc(ctx, ownerAccountID)
	}
	return 0, nil
}

type mockBetaRequestRepository struct {
	FindByAccountIDFunc func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error)
}

func (m *mockBetaRequestRepository) Save(ctx context.Context, r *betarequest.BetaRequest) error {
	return nil
}

func (m *mockBetaRequestRepository) Update(ctx context.Context, r *betarequest.BetaRequest) error {
	return nil
}

func (m *mockBetaRequestRepository) FindBySID(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
	return nil, nil
}

func (m *mockBetaRequestRepository) FindByEmail(ctx context.Context, email string) (*betarequest.BetaRequest, error) {
	return nil, nil
}

func (m *mockBetaRequestRepository) FindByAccountID(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
	if m.FindByAccountIDFunc != nil {
		return m.FindByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockBetaRequestRepository) List(ctx context.Context, status *vo.RequestStatus) ([]*betarequest.BetaRequest, error) {
	return nil, nil
}

// mockTransactor runs the function inline with no real transaction.
type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

func admittedRequest(accountID string) *betarequest.BetaRequest {
	now := time.Now().UTC()
	r, err := betarequest.ReconstructBetaRequest(
		1, "req_abc", "Ada", "ada@example.com", "",
		vo.StatusApproved, accountID, now, &now, now,
	)
	if err != nil {
		panic(err)
	}
	return r
}

func ownedCircle(sid, ownerAccountID string) *circle.Circle {
	now := time.Now().UTC()
	c, err := circle.ReconstructCircle(1, sid, "Night Sessions", ownerAccountID, false, now, now)
	if err != nil {
		panic(err)
	}
	return c
}
