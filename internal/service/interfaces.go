// Package service contains business logic for the application.
package service

import (
	"context"
	"time"

	"shareit/internal/models"
	"shareit/internal/pagination"
)

// UserServicer defines the interface for user operations.
type UserServicer interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemServicer defines the interface for item and comment operations.
type ItemServicer interface {
	CreateItem(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error)
	GetItem(ctx context.Context, viewerID, itemID int64) (*models.Item, error)
	ListOwnerItems(ctx context.Context, ownerID int64, page pagination.Page) ([]models.Item, error)
	SearchItems(ctx context.Context, text string, page pagination.Page) ([]models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	AddComment(ctx context.Context, userID, itemID int64, req *models.CreateCommentRequest) (*models.Comment, error)
}

// ItemRequestServicer defines the interface for item request operations.
type ItemRequestServicer interface {
	CreateRequest(ctx context.Context, userID int64, req *models.CreateItemRequestRequest) (*models.ItemRequest, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, page pagination.Page) ([]models.ItemRequest, error)
	GetRequest(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error)
}

// BookingServicer defines the interface for booking operations.
type BookingServicer interface {
	CreateBooking(ctx context.Context, requesterID int64, req *models.CreateBookingRequest) (*models.Booking, error)
	SetApproval(ctx context.Context, callerID, bookingID int64, approved bool) (*models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	ListForBooker(ctx context.Context, userID int64, state string, page pagination.Page) ([]models.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, page pagination.Page) ([]models.Booking, error)
}

// Ensure concrete types implement interfaces
var (
	_ UserServicer        = (*UserService)(nil)
	_ ItemServicer        = (*ItemService)(nil)
	_ ItemRequestServicer = (*ItemRequestService)(nil)
	_ BookingServicer     = (*BookingService)(nil)
)

// utcNow is the default clock. All stored and compared times are UTC.
func utcNow() time.Time {
	return time.Now().UTC()
}
