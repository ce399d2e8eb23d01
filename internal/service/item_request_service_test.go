package service

import (
	"context"
	"testing"

	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/pagination"
	repomocks "shareit/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type requestMocks struct {
	requests *repomocks.MockItemRequestRepository
	items    *repomocks.MockItemRepository
	users    *repomocks.MockUserRepository
}

func newItemRequestService(t *testing.T) (*ItemRequestService, requestMocks) {
	ctrl := gomock.NewController(t)
	m := requestMocks{
		requests: repomocks.NewMockItemRequestRepository(ctrl),
		items:    repomocks.NewMockItemRepository(ctrl),
		users:    repomocks.NewMockUserRepository(ctrl),
	}
	svc := NewItemRequestService(m.requests, m.items, m.users, testLogger)
	svc.now = fixedClock
	return svc, m
}

func TestItemRequestService_CreateRequest(t *testing.T) {
	req := &models.CreateItemRequestRequest{Description: "Need a ladder"}

	t.Run("creates request stamped with now", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(&models.User{ID: bookerID}, nil)
		m.requests.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.ItemRequest) error {
				assert.Equal(t, fixedNow, r.Created)
				assert.Equal(t, bookerID, r.RequestorID)
				r.ID = 1
				return nil
			})

		request, err := svc.CreateRequest(context.Background(), bookerID, req)

		require.NoError(t, err)
		assert.Equal(t, int64(1), request.ID)
		assert.NotNil(t, request.Items)
		assert.Empty(t, request.Items)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), strangerID).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.CreateRequest(context.Background(), strangerID, req)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestItemRequestService_ListOwnRequests(t *testing.T) {
	svc, m := newItemRequestService(t)
	requestID := int64(4)

	m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(&models.User{ID: bookerID}, nil)
	m.requests.EXPECT().FindByRequestor(gomock.Any(), bookerID).Return([]models.ItemRequest{{ID: requestID}, {ID: 3}}, nil)
	m.items.EXPECT().FindByRequestIDs(gomock.Any(), []int64{requestID, 3}).Return([]models.Item{
		{ID: itemID, OwnerID: ownerID, RequestID: &requestID},
	}, nil)

	requests, err := svc.ListOwnRequests(context.Background(), bookerID)

	require.NoError(t, err)
	require.Len(t, requests, 2)
	require.Len(t, requests[0].Items, 1)
	assert.Equal(t, itemID, requests[0].Items[0].ID)
	assert.NotNil(t, requests[1].Items)
	assert.Empty(t, requests[1].Items)
}

func TestItemRequestService_ListOtherRequests(t *testing.T) {
	page := pagination.Page{Offset: 0, Limit: 2}

	t.Run("returns paged requests of other users", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(&models.User{ID: bookerID}, nil)
		m.requests.EXPECT().FindOthers(gomock.Any(), bookerID, page).Return([]models.ItemRequest{{ID: 9, RequestorID: ownerID}}, nil)
		m.items.EXPECT().FindByRequestIDs(gomock.Any(), []int64{9}).Return([]models.Item{}, nil)

		requests, err := svc.ListOtherRequests(context.Background(), bookerID, page)

		require.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("nothing to attach when empty", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(&models.User{ID: bookerID}, nil)
		m.requests.EXPECT().FindOthers(gomock.Any(), bookerID, page).Return([]models.ItemRequest{}, nil)

		requests, err := svc.ListOtherRequests(context.Background(), bookerID, page)

		require.NoError(t, err)
		assert.Empty(t, requests)
	})
}

func TestItemRequestService_GetRequest(t *testing.T) {
	t.Run("any existing user can read", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), strangerID).Return(&models.User{ID: strangerID}, nil)
		m.requests.EXPECT().FindByID(gomock.Any(), int64(9)).Return(&models.ItemRequest{ID: 9, RequestorID: bookerID}, nil)
		m.items.EXPECT().FindByRequestIDs(gomock.Any(), []int64{9}).Return([]models.Item{}, nil)

		request, err := svc.GetRequest(context.Background(), strangerID, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), request.ID)
	})

	t.Run("missing request", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), strangerID).Return(&models.User{ID: strangerID}, nil)
		m.requests.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, apperrors.ErrItemRequestNotFound)

		_, err := svc.GetRequest(context.Background(), strangerID, 9)

		assert.Equal(t, apperrors.ErrItemRequestNotFound, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newItemRequestService(t)
		m.users.EXPECT().FindByID(gomock.Any(), strangerID).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.GetRequest(context.Background(), strangerID, 9)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
