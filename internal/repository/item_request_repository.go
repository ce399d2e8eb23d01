package repository

import (
	"context"
	"errors"

	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/pagination"

	"gorm.io/gorm"
)

// ItemRequestRepository defines the interface for item request data operations
type ItemRequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	FindByRequestor(ctx context.Context, requestorID int64) ([]models.ItemRequest, error)
	FindOthers(ctx context.Context, userID int64, page pagination.Page) ([]models.ItemRequest, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type itemRequestRepository struct {
	db *gorm.DB
}

// NewItemRequestRepository creates a new ItemRequestRepository
func NewItemRequestRepository(db *gorm.DB) ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *itemRequestRepository) FindByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var request models.ItemRequest

	err := r.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// FindByRequestor returns the user's own requests, newest first
func (r *itemRequestRepository) FindByRequestor(ctx context.Context, requestorID int64) ([]models.ItemRequest, error) {
	requests := []models.ItemRequest{}
	err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FindOthers returns requests made by anyone except userID, newest first
func (r *itemRequestRepository) FindOthers(ctx context.Context, userID int64, page pagination.Page) ([]models.ItemRequest, error) {
	requests := []models.ItemRequest{}
	err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", userID).
		Order("created DESC, id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *itemRequestRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ItemRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
