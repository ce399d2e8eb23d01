package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shareit/internal/authz"
	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/handler"
	"shareit/internal/logging"
	"shareit/internal/metrics"
	"shareit/internal/repository"
	"shareit/internal/router"
	"shareit/internal/service"
	"shareit/internal/validator"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
)

// @title           ShareIt API
// @version         1.0
// @description     Peer-to-peer item lending: users list items, book them, and comment after use.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

func main() {
	// Load configuration
	cfg := config.Load()

	log, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to build logger")
	}
	if closer != nil {
		defer closer.Close()
	}
	log.Info().Str("port", cfg.ServerPort).Str("db_driver", cfg.Database.Driver).Msg("configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()
	metrics.Register()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close(db, log)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to access connection pool")
	}

	// Repository layer
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	requestRepo := repository.NewItemRequestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Authorization
	authorizer := authz.NewLocalAuthorizer()

	// Service layer
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, userRepo, requestRepo, bookingRepo, commentRepo, authorizer, log)
	requestService := service.NewItemRequestService(requestRepo, itemRepo, userRepo, log)
	bookingService := service.NewBookingService(bookingRepo, itemRepo, userRepo, authorizer, log)

	// Router
	r := router.Setup(&router.Config{
		UserHandler:        handler.NewUserHandler(userService, log),
		ItemHandler:        handler.NewItemHandler(itemService, cfg.Pagination, log),
		BookingHandler:     handler.NewBookingHandler(bookingService, cfg.Pagination, log),
		ItemRequestHandler: handler.NewItemRequestHandler(requestService, cfg.Pagination, log),
		HealthHandler:      handler.NewHealthHandler(sqlDB),
		RateLimit:          cfg.RateLimit,
		Logger:             log,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	log.Info().Msg("server shutdown complete")
}
