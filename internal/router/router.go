// Package router sets up HTTP routes for the API.
package router

import (
	_ "shareit/swagger" // Import generated swagger docs

	"shareit/internal/config"
	"shareit/internal/handler"
	"shareit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	UserHandler        *handler.UserHandler
	ItemHandler        *handler.ItemHandler
	BookingHandler     *handler.BookingHandler
	ItemRequestHandler *handler.ItemRequestHandler
	HealthHandler      *handler.HealthHandler
	RateLimit          config.RateLimitConfig
	Logger             *zerolog.Logger
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(cfg.Logger),
		middleware.Metrics(),
		middleware.CORS(),
	)

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", cfg.HealthHandler.Health)

	api := r.Group("")
	api.Use(middleware.RateLimit(cfg.RateLimit))

	// User routes (no caller identity)
	users := api.Group("/users")
	{
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("", cfg.UserHandler.GetAllUsers)
		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PATCH("/:id", cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
	}

	sharer := middleware.SharerUser()

	items := api.Group("/items")
	{
		items.GET("/search", cfg.ItemHandler.SearchItems)
		items.DELETE("/:id", cfg.ItemHandler.DeleteItem)

		items.POST("", sharer, cfg.ItemHandler.CreateItem)
		items.GET("", sharer, cfg.ItemHandler.ListOwnerItems)
		items.GET("/:id", sharer, cfg.ItemHandler.GetItem)
		items.PATCH("/:id", sharer, cfg.ItemHandler.UpdateItem)
		items.POST("/:id/comment", sharer, cfg.ItemHandler.AddComment)
	}

	bookings := api.Group("/bookings")
	bookings.Use(sharer)
	{
		bookings.POST("", cfg.BookingHandler.CreateBooking)
		bookings.GET("", cfg.BookingHandler.ListForBooker)
		bookings.GET("/owner", cfg.BookingHandler.ListForOwner)
		bookings.GET("/:id", cfg.BookingHandler.GetBooking)
		bookings.PATCH("/:id", cfg.BookingHandler.SetApproval)
	}

	requests := api.Group("/requests")
	requests.Use(sharer)
	{
		requests.POST("", cfg.ItemRequestHandler.CreateRequest)
		requests.GET("", cfg.ItemRequestHandler.ListOwnRequests)
		requests.GET("/all", cfg.ItemRequestHandler.ListOtherRequests)
		requests.GET("/:id", cfg.ItemRequestHandler.GetRequest)
	}

	return r
}
