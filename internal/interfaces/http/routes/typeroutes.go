package routes

import (
	"github.com/gin-gonic/gin"

	typehandlers "orgjet/internal/interfaces/http/handlers/requesttype"
	"orgjet/internal/interfaces/http/middleware"
)

type TypeRouteConfig struct {
	TypeHandler    *typehandlers.TypeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTypeRoutes(engine *gin.Engine, config *TypeRouteConfig) {
	types := engine.Group("/types")
	types.Use(config.AuthMiddleware.RequireAuth())
	{
		types.GET("", config.TypeHandler.ListTypes)
		types.POST("/:id/validate", config.TypeHandler.ValidateMetadata)
	}
}
