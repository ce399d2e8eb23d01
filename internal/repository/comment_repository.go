package repository

import (
	"context"

	"shareit/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByItemIDs(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// FindByItemIDs returns comments for the given items, oldest first, with author names filled in
func (r *commentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	if len(itemIDs) == 0 {
		return comments, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created, id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for i := range comments {
		if comments[i].Author != nil {
			comments[i].AuthorName = comments[i].Author.Name
		}
	}
	return comments, nil
}
