package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	"helpdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/register", config.AuthHandler.Register)
		api.POST("/login", config.AuthHandler.Login)
		api.POST("/logout", config.AuthHandler.Logout)

		api.GET("/user",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.CurrentUser)
	}
}
