// Package circle exposes the visionary surface: circle management and
// artifact uploads. Every route requires a bearer token resolved by the
// creator-auth middleware; admission is re-checked per operation.
package circle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	artifactusecases "dropcircle/internal/application/artifact/usecases"
	"dropcircle/internal/application/circle/usecases"
	"dropcircle/internal/interfaces/http/middleware"
	"dropcircle/internal/shared/logger"
	"dropcircle/internal/shared/utils"
)

// maxUploadBytes caps artifact uploads at 512 MiB.
const maxUploadBytes = 512 << 20

type CircleHandler struct {
	createCircleUC   usecases.CreateCircleExecutor
	renameCircleUC   usecases.RenameCircleExecutor
	setLiveUC        usecases.SetLiveExecutor
	listCirclesUC    usecases.ListCirclesExecutor
	attachArtifactUC artifactusecases.AttachArtifactExecutor
	listArtifactsUC  artifactusecases.ListArtifactsExecutor
	logger           logger.Interface
}

func NewCircleHandler(
	createCircleUC usecases.CreateCircleExecutor,
	renameCircleUC usecases.RenameCircleExecutor,
	setLiveUC usecases.SetLiveExecutor,
	listCirclesUC usecases.ListCirclesExecutor,
	attachArtifactUC artifactusecases.AttachArtifactExecutor,
	listArtifactsUC artifactusecases.ListArtifactsExecutor,
) *CircleHandler {
	return &CircleHandler{
		createCircleUC:   createCircleUC,
		renameCircleUC:   renameCircleUC,
		setLiveUC:        setLiveUC,
		listCirclesUC:    listCirclesUC,
		attachArtifactUC: attachArtifactUC,
		listArtifactsUC:  listArtifactsUC,
		logger:           logger.NewLogger(),
	}
}

// CreateCircle handles POST /circles
func (h *CircleHandler) CreateCircle(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create circle", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createCircleUC.Execute(c.Request.Context(), req.ToCommand(accountID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Circle created")
}

// ListCircles handles GET /circles
func (h *CircleHandler) ListCircles(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	circles, err := h.listCirclesUC.Execute(c.Request.Context(), usecases.ListCirclesQuery{AccountID: accountID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", circles)
}

// RenameCircle handles PATCH /circles/:id/title
func (h *CircleHandler) RenameCircle(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req RenameCircleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rename circle", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.renameCircleUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id"), accountID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Circle renamed", result)
}

// SetLive handles PATCH /circles/:id/live
func (h *CircleHandler) SetLive(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SetLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set live", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "live is required")
		return
	}

	result, err := h.setLiveUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id"), accountID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Circle updated", result)
}

// AttachArtifact handles POST /circles/:id/artifacts. Multipart form with a
// "media" file part and a "title" field; the media kind comes from the
// part's declared content type.
func (h *CircleHandler) AttachArtifact(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("media")
	if err != nil {
		h.logger.Warnw("missing media part for attach artifact", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "media file is required")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "title is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	cmd := artifactusecases.AttachArtifactCommand{
		CircleID:    c.Param("id"),
		AccountID:   accountID,
		Title:       title,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	}

	result, err := h.attachArtifactUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Artifact attached")
}

// ListArtifacts handles GET /circles/:id/artifacts
func (h *CircleHandler) ListArtifacts(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	query := artifactusecases.ListArtifactsQuery{
		CircleID:  c.Param("id"),
		AccountID: accountID,
	}

	artifacts, err := h.listArtifactsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", artifacts)
}
