package routes

import (
	"github.com/gin-gonic/gin"

	circlehandlers "dropcircle/internal/interfaces/http/handlers/circle"
	"dropcircle/internal/interfaces/http/middleware"
)

type CircleRouteConfig struct {
	CircleHandler *circlehandlers.CircleHandler
	CreatorAuth   *middleware.CreatorAuth
}

func SetupCircleRoutes(engine *gin.Engine, config *CircleRouteConfig) {
	circles := engine.Group("/circles")
	circles.Use(config.CreatorAuth.Require())
	{
		circles.POST("", config.CircleHandler.CreateCircle)
		circles.GET("", config.CircleHandler.ListCircles)

		circles.PATCH("/:id/title", config.CircleHandler.RenameCircle)
		circles.PATCH("/:id/live", config.CircleHandler.SetLive)

		circles.POST("/:id/artifacts", config.CircleHandler.AttachArtifact)
		circles.GET("/:id/artifacts", config.CircleHandler.ListArtifacts)
	}
}
