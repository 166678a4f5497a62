package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "orgjet/internal/interfaces/http/handlers/auth"
	"orgjet/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	engine.POST("/auth/login", config.AuthHandler.Login)

	engine.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.GetMe)
}
