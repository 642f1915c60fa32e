package beta

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropcircle/internal/application/betarequest/usecases"
	"dropcircle/internal/interfaces/http/handlers/testutil"
	"dropcircle/internal/shared/errors"
)

type mockSubmitRequestUC struct {
	result *usecases.SubmitRequestResult
	err    error
	gotCmd *usecases.SubmitRequestCommand
}

func (m *mockSubmitRequestUC) Execute(_ context.Context, cmd usecases.SubmitRequestCommand) (*usecases.SubmitRequestResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockUpdateNoteUC struct {
	err    error
	gotCmd *usecases.UpdateNoteCommand
}

func (m *mockUpdateNoteUC) Execute(_ context.Context, cmd usecases.UpdateNoteCommand) error {
	m.gotCmd = &cmd
	return m.err
}

func TestBetaHandler_SubmitRequest(t *testing.T) {
	t.Run("valid submission returns 201", func(t *testing.T) {
		submitUC := &mockSubmitRequestUC{
			result: &usecases.SubmitRequestResult{
				RequestID: "req_abc123",
				Status:    "pending",
				CreatedAt: time.Now(),
			},
		}
		handler := NewBetaHandler(submitUC, &mockUpdateNoteUC{})

		body := SubmitRequestRequest{Name: "Ana", Email: "ana@example.com", Note: "long-time fan"}
		c, w := testutil.NewTestContext(http.MethodPost, "/beta/requests", body)
		handler.SubmitRequest(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, submitUC.gotCmd)
		assert.Equal(t, "ana@example.com", submitUC.gotCmd.Email)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		submitUC := &mockSubmitRequestUC{
			err: errors.NewDuplicateRequestError("a request for this email already exists"),
		}
		handler := NewBetaHandler(submitUC, &mockUpdateNoteUC{})

		body := SubmitRequestRequest{Name: "Ana", Email: "ana@example.com"}
		c, w := testutil.NewTestContext(http.MethodPost, "/beta/requests", body)
		handler.SubmitRequest(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, string(errors.ErrorTypeDuplicateRequest), resp.Error.Type)
	})

	t.Run("missing email returns 400 before the use case runs", func(t *testing.T) {
		submitUC := &mockSubmitRequestUC{}
		handler := NewBetaHandler(submitUC, &mockUpdateNoteUC{})

		c, w := testutil.NewTestContext(http.MethodPost, "/beta/requests", map[string]any{
			"name": "Ana",
		})
		handler.SubmitRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, submitUC.gotCmd)
	})

	t.Run("malformed email is rejected by binding", func(t *testing.T) {
		submitUC := &mockSubmitRequestUC{}
		handler := NewBetaHandler(submitUC, &mockUpdateNoteUC{})

		body := SubmitRequestRequest{Name: "Ana", Email: "not-an-email"}
		c, w := testutil.NewTestContext(http.MethodPost, "/beta/requests", body)
		handler.SubmitRequest(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, submitUC.gotCmd)
	})
}

func TestBetaHandler_UpdateNote(t *testing.T) {
	t.Run("matched email returns 200", func(t *testing.T) {
		updateUC := &mockUpdateNoteUC{}
		handler := NewBetaHandler(&mockSubmitRequestUC{}, updateUC)

		body := UpdateNoteRequest{Email: "ana@example.com", Note: "updated pitch"}
		c, w := testutil.NewTestContext(http.MethodPut, "/beta/requests/note", body)
		handler.UpdateNote(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, updateUC.gotCmd)
		assert.Equal(t, "updated pitch", updateUC.gotCmd.Note)
	})

	t.Run("unknown email is indistinguishable from a match", func(t *testing.T) {
		// The use case swallows the miss, so the handler sees no error.
		updateUC := &mockUpdateNoteUC{}
		handler := NewBetaHandler(&mockSubmitRequestUC{}, updateUC)

		body := UpdateNoteRequest{Email: "stranger@example.com", Note: "hello"}
		c, w := testutil.NewTestContext(http.MethodPut, "/beta/requests/note", body)
		handler.UpdateNote(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		updateUC := &mockUpdateNoteUC{}
		handler := NewBetaHandler(&mockSubmitRequestUC{}, updateUC)

		c, w := testutil.NewTestContext(http.MethodPut, "/beta/requests/note", map[string]any{
			"note": "hello",
		})
		handler.UpdateNote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, updateUC.gotCmd)
	})
}
