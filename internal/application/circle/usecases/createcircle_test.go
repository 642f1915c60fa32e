package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/domain/betarequest"
	vo "dropcircle/internal/domain/betarequest/valueobjects"
	"dropcircle/internal/domain/circle"
	"dropcircle/internal/shared/errors"
	"dropcircle/internal/shared/logger"
)

func TestCreateCircleUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("admitted visionary creates an offline circle", func(t *testing.T) {
		var saved *circle.Circle
		circleRepo := &mockCircleRepository{
			SaveFunc: func(ctx context.Context, c *circle.Circle) error {
				saved = c
				return c.SetID(1)
			},
		}
		requestRepo := &mockBetaRequestRepository{
			FindByAccountIDFunc: func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
				return admittedRequest(accountID), nil
			},
		}

		uc := NewCreateCircleUseCase(circleRepo, requestRepo, &mockTransactor{}, log)
		result, err := uc.Execute(context.Background(), CreateCircleCommand{
			AccountID: "acct_1",
			Title:     "Night Sessions",
		})

		require.NoError(t, err)
		assert.False(t, result.Live)
		assert.NotEmpty(t, result.CircleID)
		require.NotNil(t, saved)
		assert.False(t, saved.IsLive())
		assert.Equal(t, "acct_1", saved.OwnerAccountID())
	})

	t.Run("missing account is unauthorized", func(t *testing.T) {
		uc := NewCreateCircleUseCase(&mockCircleRepository{}, &mockBetaRequestRepository{}, &mockTransactor{}, log)
		_, err := uc.Execute(context.Background(), CreateCircleCommand{Title: "Title"})
		require.True(t, errors.IsAppError(err))
		assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
	})

	t.Run("unknown account is forbidden", func(t *testing.T) {
		requestRepo := &mockBetaRequestRepository{
			FindByAccountIDFunc: func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
				return nil, nil
			},
		}

		uc := NewCreateCircleUseCase(&mockCircleRepository{}, requestRepo, &mockTransactor{}, log)
		_, err := uc.Execute(context.Background(), CreateCircleCommand{
			AccountID: "acct_ghost",
			Title:     "Title",
		})

		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("revoked approval is forbidden even with a linked account", func(t *testing.T) {
		requestRepo := &mockBetaRequestRepository{
			FindByAccountIDFunc: func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
				now := time.Now().UTC()
				r, err := betarequest.ReconstructBetaRequest(
					1, "req_abc", "Ada", "ada@example.com", "",
					vo.StatusDenied, accountID, now, &now, now,
				)
				require.NoError(t, err)
				return r, nil
			},
		}

		uc := NewCreateCircleUseCase(&mockCircleRepository{}, requestRepo, &mockTransactor{}, log)
		_, err := uc.Execute(context.Background(), CreateCircleCommand{
			AccountID: "acct_1",
			Title:     "Title",
		})

		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("quota blocks the fourth circle and nothing is saved", func(t *testing.T) {
		saveCalled := false
		circleRepo := &mockCircleRepository{
			CountByOwnerForUpdateFunc: func(ctx context.Context, ownerAccountID string) (int64, error) {
				return circle.MaxPerAccount, nil
			},
			SaveFunc: func(ctx context.Context, c *circle.Circle) error {
				saveCalled = true
				return nil
			},
		}
		requestRepo := &mockBetaRequestRepository{
			FindByAccountIDFunc: func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
				return admittedRequest(accountID), nil
			},
		}

		uc := NewCreateCircleUseCase(circleRepo, requestRepo, &mockTransactor{}, log)
		_, err := uc.Execute(context.Background(), CreateCircleCommand{
			AccountID: "acct_1",
			Title:     "Fourth",
		})

		assert.True(t, errors.IsQuotaExceededError(err))
		assert.False(t, saveCalled)
	})

	t.Run("quota check and save run inside one transaction", func(t *testing.T) {
		inTx := false
		countedInTx := false
		savedInTx := false

		circleRepo := &mockCircleRepository{
			CountByOwnerForUpdateFunc: func(ctx context.Context, ownerAccountID string) (int64, error) {
				countedInTx = inTx
				return 0, nil
			},
			SaveFunc: func(ctx context.Context, c *circle.Circle) error {
				savedInTx = inTx
				return nil
			},
		}
		requestRepo := &mockBetaRequestRepository{
			FindByAccountIDFunc: func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
				return admittedRequest(accountID), nil
			},
		}
		tx := &mockTransactor{
			RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				inTx = true
				defer func() { inTx = false }()
				return fn(ctx)
			},
		}

		uc := NewCreateCircleUseCase(circleRepo, requestRepo, tx, log)
		_, err := uc.Execute(context.Background(), CreateCircleCommand{
			AccountID: "acct_1",
			Title:     "Title",
		})

		require.NoError(t, err)
		assert.True(t, countedInTx)
		assert.True(t, savedInTx)
	})

	t.Run("blank title is a validation error", func(t *testing.T) {
		requestRepo := &mockBetaRequestRepository{
			FindByAccountIDFunc: func(ctx context.Context, accountID string) (*betarequest.BetaRequest, error) {
				return admittedRequest(accountID), nil
			},
		}

		uc := NewCreateCircleUseCase(&mockCircleRepository{}, requestRepo, &mockTransactor{}, log)
		_, err := uc.Execute(context.Background(), CreateCircleCommand{
			AccountID: "acct_1",
			Title:     "   ",
		})

		assert.True(t, errors.IsValidationError(err))
	})
}
