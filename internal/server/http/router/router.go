package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/RaffaFachrizal29/belivps/internal/server/http/handlers"
	"github.com/RaffaFachrizal29/belivps/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders/:id", orderHandler.Get)
	api.POST("/orders/:id/email", orderHandler.Email)

	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)
	admin.POST("/logout", adminHandler.Logout)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AdminRequired(facade))
	adminAuth.GET("/orders", adminHandler.List)
	adminAuth.POST("/confirm/:id", adminHandler.Confirm)
	adminAuth.DELETE("/orders/:id", adminHandler.Delete)

	return engine
}
