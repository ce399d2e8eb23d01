package service

import (
	"context"
	"time"

	"shareit/internal/models"
	"shareit/internal/pagination"
	"shareit/internal/repository"

	"github.com/rs/zerolog"
)

// ItemRequestService handles business logic for item requests.
type ItemRequestService struct {
	requests repository.ItemRequestRepository
	items    repository.ItemRepository
	users    repository.UserRepository
	log      *zerolog.Logger
	now      func() time.Time
}

// NewItemRequestService creates a new ItemRequestService.
func NewItemRequestService(
	requests repository.ItemRequestRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	log *zerolog.Logger,
) *ItemRequestService {
	return &ItemRequestService{
		requests: requests,
		items:    items,
		users:    users,
		log:      log,
		now:      utcNow,
	}
}

// CreateRequest publishes a request on behalf of userID.
func (s *ItemRequestService) CreateRequest(ctx context.Context, userID int64, req *models.CreateItemRequestRequest) (*models.ItemRequest, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: req.Description,
		RequestorID: userID,
		Created:     s.now(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}
	request.Items = []models.Item{}

	s.log.Info().Int64("requestId", request.ID).Int64("requestorId", userID).Msg("item request created")
	return request, nil
}

// ListOwnRequests returns the user's requests, newest first, each with the items offered for it.
func (s *ItemRequestService) ListOwnRequests(ctx context.Context, userID int64) ([]models.ItemRequest, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return requests, s.attachItems(ctx, requests)
}

// ListOtherRequests returns requests from other users, newest first.
func (s *ItemRequestService) ListOtherRequests(ctx context.Context, userID int64, page pagination.Page) ([]models.ItemRequest, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindOthers(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return requests, s.attachItems(ctx, requests)
}

// GetRequest returns one request. Any existing user may read any request.
func (s *ItemRequestService) GetRequest(ctx context.Context, userID, requestID int64) (*models.ItemRequest, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	requests := []models.ItemRequest{*request}
	if err := s.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return &requests[0], nil
}

func (s *ItemRequestService) attachItems(ctx context.Context, requests []models.ItemRequest) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]int64, len(requests))
	for i := range requests {
		ids[i] = requests[i].ID
	}

	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}

	byRequest := make(map[int64][]models.Item, len(requests))
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}

	for i := range requests {
		requests[i].Items = byRequest[requests[i].ID]
		if requests[i].Items == nil {
			requests[i].Items = []models.Item{}
		}
	}
	return nil
}
