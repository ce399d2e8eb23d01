// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"shareit/internal/models"
	"shareit/internal/pagination"
)

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	CreateUserFunc  func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUserFunc     func(ctx context.Context, id int64) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id int64) error
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int64) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockItemService is a mock implementation of ItemServicer.
type MockItemService struct {
	CreateItemFunc     func(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.Item, error)
	UpdateItemFunc     func(ctx context.Context, ownerID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error)
	GetItemFunc        func(ctx context.Context, viewerID, itemID int64) (*models.Item, error)
	ListOwnerItemsFunc func(ctx context.Context, ownerID int64, page pagination.Page) ([]models.Item, error)
	SearchItemsFunc    func(ctx context.Context, text string, page pagination.Page) ([]models.Item, error)
	DeleteItemFunc     func(ctx context.Context, itemID int64) error
	AddCommentFunc     func(ctx context.Context, userID, itemID int64, req *models.CreateCommentRequest) (*models.Comment, error)
}

func (m *MockItemService) CreateItem(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.Item, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, ownerID, req)
	}
	return nil, nil
}

func (m *MockItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, ownerID, itemID, req)
	}
	return nil, nil
}

func (m *MockItemService) GetItem(ctx context.Context, viewerID, itemID int64) (*models.Item, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, viewerID, itemID)
	}
	return nil, nil
}

func (m *MockItemService) ListOwnerItems(ctx context.Context, ownerID int64, page pagination.Page) ([]models.Item, error) {
	if m.ListOwnerItemsFunc != nil {
		return m.ListOwnerItemsFunc(ctx, ownerID, page)
	}
	return nil, nil
}

func (m *MockItemService) SearchItems(ctx context.Context, text string, page pagination.Page) ([]models.Item, error) {
	if m.SearchItemsFunc != nil {
		return m.SearchItemsFunc(ctx, text, page)
	}
	return nil, nil
}

func (m *MockItemService) DeleteItem(ctx context.Context, itemID int64) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return nil
}

func (m *MockItemService) AddComment(ctx context.Context, userID, itemID int64, req *models.CreateCommentRequest) (*models.Comment, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, userID, itemID, req)
	}
	return nil, nil
}

// MockItemRequestService is a mock implementation of ItemRequestServicer.
type MockItemRequestService struct {
	CreateRequestFunc     func(ctx context.Context, userID int64, req *models.CreateItemRequestRequest) (*models.ItemRequest, error)
	ListOwnRequestsFunc   func(ctx context.Context, userID int64) ([]models.ItemRequest, error)
	ListOtherRequestsFunc func(ctx context.Context, userID int64, page pagination.Page) ([]models.ItemRequest, error)
	GetRequestFunc        func(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error)
}

func (m *MockItemRequestService) CreateRequest(ctx context.Context, userID int64, req *models.CreateItemRequestRequest) (*models.ItemRequest, error) {
	if m.CreateRequestFunc != nil {
		return m.CreateRequestFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockItemRequestService) ListOwnRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error) {
	if m.ListOwnRequestsFunc != nil {
		return m.ListOwnRequestsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockItemRequestService) ListOtherRequests(ctx context.Context, userID int64, page pagination.Page) ([]models.ItemRequest, error) {
	if m.ListOtherRequestsFunc != nil {
		return m.ListOtherRequestsFunc(ctx, userID, page)
	}
	return nil, nil
}

func (m *MockItemRequestService) GetRequest(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error) {
	if m.GetRequestFunc != nil {
		return m.GetRequestFunc(ctx, userID, requestID)
	}
	return nil, nil
}

// MockBookingService is a mock implementation of BookingServicer.
type MockBookingService struct {
	CreateBookingFunc func(ctx context.Context, requesterID int64, req *models.CreateBookingRequest) (*models.Booking, error)
	SetApprovalFunc   func(ctx context.Context, callerID, bookingID int64, approved bool) (*models.Booking, error)
	GetBookingFunc    func(ctx context.Context, userID, bookingID int64) (*models.Booking, error)
	ListForBookerFunc func(ctx context.Context, userID int64, state string, page pagination.Page) ([]models.Booking, error)
	ListForOwnerFunc  func(ctx context.Context, ownerID int64, state string, page pagination.Page) ([]models.Booking, error)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, requesterID int64, req *models.CreateBookingRequest) (*models.Booking, error) {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(ctx, requesterID, req)
	}
	return nil, nil
}

func (m *MockBookingService) SetApproval(ctx context.Context, callerID, bookingID int64, approved bool) (*models.Booking, error) {
	if m.SetApprovalFunc != nil {
		return m.SetApprovalFunc(ctx, callerID, bookingID, approved)
	}
	return nil, nil
}

func (m *MockBookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	if m.GetBookingFunc != nil {
		return m.GetBookingFunc(ctx, userID, bookingID)
	}
	return nil, nil
}

func (m *MockBookingService) ListForBooker(ctx context.Context, userID int64, state string, page pagination.Page) ([]models.Booking, error) {
	if m.ListForBookerFunc != nil {
		return m.ListForBookerFunc(ctx, userID, state, page)
	}
	return nil, nil
}

func (m *MockBookingService) ListForOwner(ctx context.Context, ownerID int64, state string, page pagination.Page) ([]models.Booking, error) {
	if m.ListForOwnerFunc != nil {
		return m.ListForOwnerFunc(ctx, ownerID, state, page)
	}
	return nil, nil
}
