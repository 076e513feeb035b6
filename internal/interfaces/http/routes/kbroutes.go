package routes

import (
	"github.com/gin-gonic/gin"

	kbhandlers "helpdesk/internal/interfaces/http/handlers/kb"
	"helpdesk/internal/interfaces/http/middleware"
)

type KBRouteConfig struct {
	KBHandler      *kbhandlers.KBHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupKBRoutes registers the knowledge base endpoints. The knowledge base is
// public, so sessions are resolved when present but never required.
func SetupKBRoutes(engine *gin.Engine, config *KBRouteConfig) {
	kb := engine.Group("/api/knowledge-base")
	kb.Use(config.AuthMiddleware.OptionalAuth())
	{
		kb.GET("", config.KBHandler.ListArticles)
		kb.GET("/:id", config.KBHandler.GetArticle)
	}
}
