// Package beta exposes the public beta-request surface: anyone can submit a
// request or revise their note. No authentication on either endpoint.
package beta

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dropcircle/internal/application/betarequest/usecases"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

type BetaHandler struct {
	submitRequestUC usecases.SubmitRequestExecutor
	updateNoteUC    usecases.UpdateNoteExecutor
	logger          logger.Interface
}

func NewBetaHandler(
	submitRequestUC usecases.SubmitRequestExecutor,
	updateNoteUC usecases.UpdateNoteExecutor,
) *BetaHandler {
	return &BetaHandler{
		submitRequestUC: submitRequestUC,
		updateNoteUC:    updateNoteUC,
		logger:          logger.NewLogger(),
	}
}

// SubmitRequest handles POST /beta/requests
func (h *BetaHandler) SubmitRequest(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.submitRequestUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request received")
}

// UpdateNote handles PUT /beta/requests/note. It returns success whether or
// not the email matched; the response must not reveal which addresses have
// applied.
func (h *BetaHandler) UpdateNote(c *gin.Context) {
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update note", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	if err := h.updateNoteUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note updated", nil)
}
