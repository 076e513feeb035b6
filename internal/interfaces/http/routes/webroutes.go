package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/web"
)

type WebRouteConfig struct {
	ViewHandler    *web.ViewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupWebRoutes registers the server-rendered pages. Pages resolve the
// session when present and redirect to /auth themselves, so auth here is
// optional rather than required.
func SetupWebRoutes(engine *gin.Engine, config *WebRouteConfig) {
	pages := engine.Group("")
	pages.Use(config.AuthMiddleware.OptionalAuth())
	{
		pages.GET("/", config.ViewHandler.Dashboard)
		pages.GET("/submit-ticket", config.ViewHandler.SubmitTicket)
		pages.GET("/tickets/:id", config.ViewHandler.TicketDetail)
		pages.GET("/knowledge-base", config.ViewHandler.KnowledgeBase)
		pages.GET("/auth", config.ViewHandler.AuthPage)
	}
}
