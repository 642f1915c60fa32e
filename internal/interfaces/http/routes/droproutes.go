package routes

import (
	"github.com/gin-gonic/gin"

	drophandlers "dropcircle/internal/interfaces/http/handlers/drop"
)

type DropRouteConfig struct {
	DropHandler *drophandlers.DropHandler
	// FeedbackLimit guards the public feedback endpoint; nil disables it.
	FeedbackLimit gin.HandlerFunc
}

func SetupDropRoutes(engine *gin.Engine, config *DropRouteConfig) {
	drop := engine.Group("/drop")
	{
		if config.FeedbackLimit != nil {
			drop.POST("/feedback", config.FeedbackLimit, config.DropHandler.SubmitFeedback)
		} else {
			drop.POST("/feedback", config.DropHandler.SubmitFeedback)
		}

		// Parameterized route last.
		drop.GET("/:circleId", config.DropHandler.Resolve)
	}
}
