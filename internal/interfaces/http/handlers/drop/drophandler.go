// Package drop exposes the fan surface: invite resolution and feedback.
// Both endpoints are identity-blind; the circle id in the URL is the whole
// credential for resolution.
package drop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedbackusecases "dropcircle/internal/application/feedback/usecases"
	"dropcircle/internal/application/invite/usecases"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

type DropHandler struct {
	resolveInviteUC  usecases.ResolveInviteExecutor
	submitFeedbackUC feedbackusecases.SubmitFeedbackExecutor
	logger           logger.Interface
}

func NewDropHandler(
	resolveInviteUC usecases.ResolveInviteExecutor,
	submitFeedbackUC feedbackusecases.SubmitFeedbackExecutor,
) *DropHandler {
	return &DropHandler{
		resolveInviteUC:  resolveInviteUC,
		submitFeedbackUC: submitFeedbackUC,
		logger:           logger.NewLogger(),
	}
}

type resolveResponse struct {
	Title     string                    `json:"title"`
	Artifacts []usecases.InviteArtifact `json:"artifacts"`
}

// Resolve handles GET /drop/:circleId. A sealed circle is 403, an unknown
// id is 404; a reachable one returns the title and artifacts in creation
// order.
func (h *DropHandler) Resolve(c *gin.Context) {
	query := usecases.ResolveInviteQuery{CircleID: c.Param("circleId")}

	result, err := h.resolveInviteUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch result.Outcome {
	case usecases.OutcomeReachable:
		utils.SuccessResponse(c, http.StatusOK, "", resolveResponse{
			Title:     result.Title,
			Artifacts: result.Artifacts,
		})
	case usecases.OutcomeSealed:
		utils.ErrorResponse(c, http.StatusForbidden, "this drop is not currently available")
	default:
		utils.ErrorResponse(c, http.StatusNotFound, "drop not found")
	}
}

// SubmitFeedback handles POST /drop/feedback
func (h *DropHandler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit feedback", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.submitFeedbackUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Thanks for the feedback")
}
