package service

import (
	"context"
	"time"

	"shareit/internal/authz"
	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/pagination"
	"shareit/internal/repository"

	"github.com/rs/zerolog"
)

// ItemService handles business logic for items and their comments.
type ItemService struct {
	items    repository.ItemRepository
	users    repository.UserRepository
	requests repository.ItemRequestRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository
	authz    authz.Authorizer
	log      *zerolog.Logger
	now      func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items repository.ItemRepository,
	users repository.UserRepository,
	requests repository.ItemRequestRepository,
	bookings repository.BookingRepository,
	comments repository.CommentRepository,
	authorizer authz.Authorizer,
	log *zerolog.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		requests: requests,
		bookings: bookings,
		comments: comments,
		authz:    authorizer,
		log:      log,
		now:      utcNow,
	}
}

// CreateItem lists a new item for ownerID. A requestId that does not match an
// existing request is dropped rather than rejected.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.Item, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
	}

	if req.RequestID != nil {
		exists, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if exists {
			item.RequestID = req.RequestID
		}
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info().Int64("itemId", item.ID).Int64("ownerId", ownerID).Msg("item created")
	return item, nil
}

// UpdateItem patches an item. Only the owner may do this.
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	if !s.authz.CanPerformOnItem(item, ownerID, authz.ActionItemUpdate) {
		return nil, apperrors.ErrNotItemOwner
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info().Int64("itemId", itemID).Msg("item updated")
	return item, nil
}

// GetItem returns an item with its comments. The owner also sees the last and next bookings.
func (s *ItemService) GetItem(ctx context.Context, viewerID, itemID int64) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	items := []models.Item{*item}
	withBookings := s.authz.CanPerformOnItem(item, viewerID, authz.ActionItemViewBookings)
	if err := s.decorate(ctx, items, withBookings); err != nil {
		return nil, err
	}

	return &items[0], nil
}

// ListOwnerItems returns the owner's items with comments and last/next bookings.
func (s *ItemService) ListOwnerItems(ctx context.Context, ownerID int64, page pagination.Page) ([]models.Item, error) {
	items, err := s.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	if err := s.decorate(ctx, items, true); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchItems finds available items whose name or description contains text.
func (s *ItemService) SearchItems(ctx context.Context, text string, page pagination.Page) ([]models.Item, error) {
	return s.items.Search(ctx, text, page)
}

// DeleteItem removes an item by id.
func (s *ItemService) DeleteItem(ctx context.Context, itemID int64) error {
	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}

	s.log.Info().Int64("itemId", itemID).Msg("item deleted")
	return nil
}

// AddComment records feedback from a user who has finished an approved rental of the item.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int64, req *models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	completed, err := s.bookings.ExistsCompleted(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, apperrors.ErrCompletedBookingNotFound
	}

	comment := &models.Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: userID,
		Created:  now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.AuthorName = author.Name

	s.log.Info().Int64("itemId", itemID).Int64("authorId", userID).Msg("comment added")
	return comment, nil
}

// decorate attaches comments to every item and, when withBookings is set, the
// last/next booking summary. Lookups are batched across items.
func (s *ItemService) decorate(ctx context.Context, items []models.Item, withBookings bool) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}

	comments, err := s.comments.FindByItemIDs(ctx, ids)
	if err != nil {
		return err
	}
	commentsByItem := make(map[int64][]models.Comment, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	var bookingsByItem map[int64][]models.Booking
	if withBookings {
		bookings, err := s.bookings.FindForSummary(ctx, ids)
		if err != nil {
			return err
		}
		bookingsByItem = make(map[int64][]models.Booking, len(items))
		for _, b := range bookings {
			bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
		}
	}

	now := s.now()
	for i := range items {
		items[i].Comments = commentsByItem[items[i].ID]
		if withBookings {
			items[i].LastBooking, items[i].NextBooking = SummarizeBookings(bookingsByItem[items[i].ID], now)
		}
	}
	return nil
}
