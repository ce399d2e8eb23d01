//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"

	"shareit/internal/authz"
	"shareit/internal/config"
	"shareit/internal/handler"
	"shareit/internal/logging"
	"shareit/internal/metrics"
	"shareit/internal/repository"
	"shareit/internal/router"
	"shareit/internal/service"
	"shareit/test/api/testdb"

	"github.com/gin-gonic/gin"
)

// TestDBName is the database name used in tests.
const TestDBName = "shareit_api"

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	MySQL *testdb.MySQLContainer

	// Repositories (for direct database access in tests)
	UserRepo    repository.UserRepository
	ItemRepo    repository.ItemRepository
	RequestRepo repository.ItemRequestRepository
	BookingRepo repository.BookingRepository
	CommentRepo repository.CommentRepository
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)
	metrics.Register()

	mysqlDB, err := testdb.SetupMySQL(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	sqlDB, err := mysqlDB.DB.DB()
	if err != nil {
		_ = mysqlDB.Cleanup(ctx)
		return nil, err
	}

	log := logging.Nop()
	paging := config.PaginationConfig{}

	// Repository layer
	userRepo := repository.NewUserRepository(mysqlDB.DB)
	itemRepo := repository.NewItemRepository(mysqlDB.DB)
	requestRepo := repository.NewItemRequestRepository(mysqlDB.DB)
	bookingRepo := repository.NewBookingRepository(mysqlDB.DB)
	commentRepo := repository.NewCommentRepository(mysqlDB.DB)

	authorizer := authz.NewLocalAuthorizer()

	// Service layer
	userService := service.NewUserService(userRepo, log)
	itemService := service.NewItemService(itemRepo, userRepo, requestRepo, bookingRepo, commentRepo, authorizer, log)
	requestService := service.NewItemRequestService(requestRepo, itemRepo, userRepo, log)
	bookingService := service.NewBookingService(bookingRepo, itemRepo, userRepo, authorizer, log)

	r := router.Setup(&router.Config{
		UserHandler:        handler.NewUserHandler(userService, log),
		ItemHandler:        handler.NewItemHandler(itemService, paging, log),
		BookingHandler:     handler.NewBookingHandler(bookingService, paging, log),
		ItemRequestHandler: handler.NewItemRequestHandler(requestService, paging, log),
		HealthHandler:      handler.NewHealthHandler(sqlDB),
		Logger:             log,
	})

	return &TestServer{
		Router:      r,
		MySQL:       mysqlDB,
		UserRepo:    userRepo,
		ItemRepo:    itemRepo,
		RequestRepo: requestRepo,
		BookingRepo: bookingRepo,
		CommentRepo: commentRepo,
	}, nil
}

// Cleanup terminates the container.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MySQL != nil {
		_ = ts.MySQL.Cleanup(ctx)
	}
}
