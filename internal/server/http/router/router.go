package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dmarquina/eventbooking/internal/server/http/handlers"
	"github.com/dmarquina/eventbooking/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BookingFacade, verifier middleware.TokenVerifier, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	orderHandler := handlers.NewOrderHandler(facade)
	holdHandler := handlers.NewHoldHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api/v1")
	api.Use(middleware.AuthRequired(verifier))

	api.POST("/holds", holdHandler.Create)
	api.DELETE("/holds/:id", holdHandler.Release)

	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:id", orderHandler.Get)
	api.POST("/orders/:id/summary", orderHandler.SendSummary)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.PATCH("/orders/:id/status", adminHandler.SetStatus)
	admin.POST("/orders/:id/items", adminHandler.AddItems)
	admin.DELETE("/orders/:id/items", adminHandler.RemoveItems)
	admin.POST("/orders/:id/assign-provider", adminHandler.AssignProvider)

	return engine
}
