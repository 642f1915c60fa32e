package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "dropcircle/internal/interfaces/http/handlers/admin"
	"dropcircle/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AdminHandler *adminhandlers.AdminHandler
	OperatorAuth *middleware.OperatorAuth
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.OperatorAuth.Require())
	{
		// Specific paths before parameterized ones.
		admin.GET("/requests", config.AdminHandler.ListRequests)
		admin.GET("/requests/lookup", config.AdminHandler.GetRequestByEmail)
		admin.POST("/requests/:id/review", config.AdminHandler.ReviewRequest)
		admin.POST("/requests/:id/provision", config.AdminHandler.ProvisionAccount)

		admin.GET("/visionaries", config.AdminHandler.ListVisionaries)
		admin.GET("/feedback", config.AdminHandler.ListFeedback)
	}
}
