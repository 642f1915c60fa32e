package routes

import (
	"github.com/gin-gonic/gin"

	betahandlers "dropcircle/internal/interfaces/http/handlers/beta"
)

type BetaRouteConfig struct {
	BetaHandler *betahandlers.BetaHandler
	// SubmitLimit guards the public submit endpoint; nil disables limiting.
	SubmitLimit gin.HandlerFunc
}

func SetupBetaRoutes(engine *gin.Engine, config *BetaRouteConfig) {
	beta := engine.Group("/beta")
	{
		if config.SubmitLimit != nil {
			beta.POST("/requests", config.SubmitLimit, config.BetaHandler.SubmitRequest)
		} else {
			beta.POST("/requests", config.BetaHandler.SubmitRequest)
		}
		beta.PUT("/requests/note", config.BetaHandler.UpdateNote)
	}
}
