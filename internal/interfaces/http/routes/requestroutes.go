package routes

import (
	"github.com/gin-gonic/gin"

	boardhandlers "orgjet/internal/interfaces/http/handlers/board"
	requesthandlers "orgjet/internal/interfaces/http/handlers/request"
	"orgjet/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
	BoardHandler   *boardhandlers.BoardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	requests := engine.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		requests.POST("",
			config.RequestHandler.CreateRequest)
		requests.GET("",
			config.RequestHandler.ListRequests)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		requests.POST("/:id/comment",
			config.RequestHandler.AddComment)
		requests.POST("/:id/assign",
			config.RequestHandler.AssignRequest)
		requests.POST("/:id/assignees",
			config.RequestHandler.AddAssignees)
		requests.DELETE("/:id/assignees/:uid",
			config.RequestHandler.RemoveAssignee)
		requests.POST("/:id/attachments",
			config.RequestHandler.UploadAttachments)
		requests.POST("/:id/post",
			config.RequestHandler.CreatePost)
		requests.POST("/:id/subscribe",
			config.RequestHandler.Subscribe)
		requests.DELETE("/:id/subscribe",
			config.RequestHandler.Unsubscribe)

		// Generic parameterized routes (must come LAST)
		requests.GET("/:id",
			config.RequestHandler.GetRequest)
		requests.PATCH("/:id",
			config.RequestHandler.UpdateRequest)
		requests.DELETE("/:id",
			config.RequestHandler.DeleteRequest)
	}

	engine.GET("/board",
		config.AuthMiddleware.RequireAuth(),
		config.BoardHandler.GetBoard)
}
