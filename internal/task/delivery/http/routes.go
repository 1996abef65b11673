package http

import (
	"github.com/gin-gonic/gin"

	"assistente-gestao/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires the API key; executing commands is also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/export", h.Export)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}

	commands := rg.Group("/commands", mw.Auth())
	{
		commands.POST("", mw.RateLimit(), h.ExecuteCommand)
		commands.POST("/parse", h.ParseCommand)
		commands.GET("/examples", h.Examples)
		commands.GET("/suggestions", h.Suggestions)
	}
}
