package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

func reviewableRequest(t *testing.T, status vo.RequestStatus) *betarequest.BetaRequest {
	t.Helper()
	now := time.Now().UTC()
	var reviewedAt *time.Time
	if status.IsDecision() {
		reviewedAt = &now
	}
	r, err := betarequest.ReconstructBetaRequest(1, "req_abc", "Ada", "ada@example.com", "", status, "", now, reviewedAt, now)
	require.NoError(t, err)
	return r
}

func TestReviewRequestUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("approves pending request and emails the requester", func(t *testing.T) {
		repo := &mockBetaRequestRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
				return reviewableRequest(t, vo.StatusPending), nil
			},
		}
		notifier := newMockNotifier()

		uc := NewReviewRequestUseCase(repo, notifier, log)
		result, err := uc.Execute(context.Background(), ReviewRequestCommand{
			RequestID: "req_abc",
			Decision:  "approved",
		})

		require.NoError(t, err)
		assert.Equal(t, "approved", result.Status)
		assert.False(t, result.ReviewedAt.IsZero())

		select {
		case call := <-notifier.approvalCalls:
			assert.Equal(t, "ada@example.com", call[0])
		case <-time.After(2 * time.Second):
			t.Fatal("approval email was never sent")
		}
	})

	t.Run("re-approving does not resend the approval email", func(t *testing.T) {
		repo := &mockBetaRequestRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
				return reviewableRequest(t, vo.StatusApproved), nil
			},
		}
		notifier := newMockNotifier()

		uc := NewReviewRequestUseCase(repo, notifier, log)
		result, err := uc.Execute(context.Background(), ReviewRequestCommand{
			RequestID: "req_abc",
			Decision:  "approved",
		})

		require.NoError(t, err)
		assert.Equal(t, "approved", result.Status)

		select {
		case <-notifier.approvalCalls:
			t.Fatal("approval email resent on idempotent re-approval")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("denying an approved request reverses it", func(t *testing.T) {
		var updated *betarequest.BetaRequest
		repo := &mockBetaRequestRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
				return reviewableRequest(t, vo.StatusApproved), nil
			},
			UpdateFunc: func(ctx context.Context, r *betarequest.BetaRequest) error {
				updated = r
				return nil
			},
		}

		uc := NewReviewRequestUseCase(repo, nil, log)
		result, err := uc.Execute(context.Background(), ReviewRequestCommand{
			RequestID: "req_abc",
			Decision:  "denied",
		})

		require.NoError(t, err)
		assert.Equal(t, "denied", result.Status)
		require.NotNil(t, updated)
		assert.Equal(t, vo.StatusDenied, updated.Status())
	})

	t.Run("rejects a non-decision", func(t *testing.T) {
		uc := NewReviewRequestUseCase(&mockBetaRequestRepository{}, nil, log)

		for _, decision := range []string{"pending", "maybe", ""} {
			_, err := uc.Execute(context.Background(), ReviewRequestCommand{
				RequestID: "req_abc",
				Decision:  decision,
			})
			assert.True(t, errors.IsValidationError(err), "decision %q", decision)
		}
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		repo := &mockBetaRequestRepository{
			FindBySIDFunc: func(ctx context.Context, sid string) (*betarequest.BetaRequest, error) {
				return nil, errors.NewNotFoundError("request not found")
			},
		}

		uc := NewReviewRequestUseCase(repo, nil, log)
		_, err := uc.Execute(context.Background(), ReviewRequestCommand{
			RequestID: "req_missing",
			Decision:  "approved",
		})

		assert.True(t, errors.IsNotFoundError(err))
	})
}
