package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/dmoura/pastelaria/internal/server/http/handlers"
	"github.com/dmoura/pastelaria/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PastelariaFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	// Open policy inherited from the storefront deployment: any origin,
	// any method and header, cookies allowed.
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	flavorHandler := handlers.NewFlavorHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)

	api := engine.Group("/api")
	api.GET("/", handlers.Root)
	api.GET("/flavors", flavorHandler.List)
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:id", orderHandler.Get)
	api.PUT("/orders/:id", orderHandler.UpdateStatus)
	api.POST("/reviews", reviewHandler.Create)
	api.GET("/reviews", reviewHandler.List)

	return engine
}
