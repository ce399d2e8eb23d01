package repository

import (
	"context"
	"errors"
	"strings"

	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/pagination"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	FindByOwner(ctx context.Context, ownerID int64, page pagination.Page) ([]models.Item, error)
	Search(ctx context.Context, text string, page pagination.Page) ([]models.Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error)
	Delete(ctx context.Context, id int64) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item

	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

// Update writes the mutable fields of item, including zero values
func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).
		Model(item).
		Select("name", "description", "available", "updated_at").
		Updates(item).Error
}

// FindByOwner returns the owner's items ordered by id
func (r *itemRepository) FindByOwner(ctx context.Context, ownerID int64, page pagination.Page) ([]models.Item, error) {
	items := []models.Item{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Search matches text case-insensitively against name or description of available items.
// Blank text matches nothing.
func (r *itemRepository) Search(ctx context.Context, text string, page pagination.Page) ([]models.Item, error) {
	items := []models.Item{}
	text = strings.TrimSpace(text)
	if text == "" {
		return items, nil
	}

	pattern := "%" + strings.ToLower(text) + "%"
	err := r.db.WithContext(ctx).
		Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?) AND available = ?", pattern, pattern, true).
		Order("id").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByRequestIDs returns items listed in answer to any of the given requests
func (r *itemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error) {
	items := []models.Item{}
	if len(requestIDs) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("request_id IN ?", requestIDs).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}
