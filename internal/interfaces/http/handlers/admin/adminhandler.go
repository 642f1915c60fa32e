// Package admin exposes the operator surface: request review, account
// provisioning and the dashboard read models. Every route sits behind the
// operator-key middleware.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	adminusecases "dropcircle/internal/application/admin/usecases"
	"dropcircle/internal/application/betarequest/usecases"
	feedbackusecases "dropcircle/internal/application/feedback/usecases"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

type AdminHandler struct {
	listRequestsUC      usecases.ListRequestsExecutor
	reviewRequestUC     usecases.ReviewRequestExecutor
	provisionAccountUC  usecases.ProvisionAccountExecutor
	getRequestByEmailUC usecases.GetRequestByEmailExecutor
	listVisionariesUC   adminusecases.ListVisionariesExecutor
	listFeedbackUC      feedbackusecases.ListFeedbackExecutor
	logger              logger.Interface
}

func NewAdminHandler(
	listRequestsUC usecases.ListRequestsExecutor,
	reviewRequestUC usecases.ReviewRequestExecutor,
	provisionAccountUC usecases.ProvisionAccountExecutor,
	getRequestByEmailUC usecases.GetRequestByEmailExecutor,
	listVisionariesUC adminusecases.ListVisionariesExecutor,
	listFeedbackUC feedbackusecases.ListFeedbackExecutor,
) *AdminHandler {
	return &AdminHandler{
		listRequestsUC:      listRequestsUC,
		reviewRequestUC:     reviewRequestUC,
		provisionAccountUC:  provisionAccountUC,
		getRequestByEmailUC: getRequestByEmailUC,
		listVisionariesUC:   listVisionariesUC,
		listFeedbackUC:      listFeedbackUC,
		logger:              logger.NewLogger(),
	}
}

// ListRequests handles GET /admin/requests?status=pending|approved|denied
func (h *AdminHandler) ListRequests(c *gin.Context) {
	query := usecases.ListRequestsQuery{
		Status: c.Query("status"),
	}

	requests, err := h.listRequestsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ReviewRequest handles POST /admin/requests/:id/review
func (h *AdminHandler) ReviewRequest(c *gin.Context) {
	var req ReviewRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for review", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "decision must be approved or denied")
		return
	}

	result, err := h.reviewRequestUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request reviewed", result)
}

// ProvisionAccount handles POST /admin/requests/:id/provision
func (h *AdminHandler) ProvisionAccount(c *gin.Context) {
	var req ProvisionAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for provision", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "account_id is required")
		return
	}

	result, err := h.provisionAccountUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account provisioned", result)
}

// GetRequestByEmail handles GET /admin/requests/lookup?email=...
func (h *AdminHandler) GetRequestByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	request, err := h.getRequestByEmailUC.Execute(c.Request.Context(), usecases.GetRequestByEmailQuery{Email: email})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", request)
}

// ListVisionaries handles GET /admin/visionaries
func (h *AdminHandler) ListVisionaries(c *gin.Context) {
	visionaries, err := h.listVisionariesUC.Execute(c.Request.Context(), adminusecases.ListVisionariesQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", visionaries)
}

// ListFeedback handles GET /admin/feedback?target=...&limit=...
func (h *AdminHandler) ListFeedback(c *gin.Context) {
	query := feedbackusecases.ListFeedbackQuery{
		TargetID: c.Query("target"),
	}
	if limit, ok := parsePositiveInt(c.Query("limit")); ok {
		query.Limit = limit
	}

	items, err := h.listFeedbackUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func parsePositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
