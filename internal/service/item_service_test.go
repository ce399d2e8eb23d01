package service

import (
	"context"
	"testing"
	"time"

	"shareit/internal/authz"
	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/pagination"
	repomocks "shareit/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemMocks struct {
	items    *repomocks.MockItemRepository
	users    *repomocks.MockUserRepository
	requests *repomocks.MockItemRequestRepository
	bookings *repomocks.MockBookingRepository
	comments *repomocks.MockCommentRepository
}

func newItemService(t *testing.T) (*ItemService, itemMocks) {
	ctrl := gomock.NewController(t)
	m := itemMocks{
		items:    repomocks.NewMockItemRepository(ctrl),
		users:    repomocks.NewMockUserRepository(ctrl),
		requests: repomocks.NewMockItemRequestRepository(ctrl),
		bookings: repomocks.NewMockBookingRepository(ctrl),
		comments: repomocks.NewMockCommentRepository(ctrl),
	}
	svc := NewItemService(m.items, m.users, m.requests, m.bookings, m.comments, authz.NewLocalAuthorizer(), testLogger)
	svc.now = fixedClock
	return svc, m
}

func TestItemService_CreateItem(t *testing.T) {
	req := &models.CreateItemRequest{Name: "Drill", Description: "Cordless", Available: boolPtr(true)}

	t.Run("creates item for existing owner", func(t *testing.T) {
		svc, m := newItemService(t)
		m.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil)
		m.items.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *models.Item) error {
				assert.Equal(t, ownerID, item.OwnerID)
				assert.True(t, item.Available)
				assert.Nil(t, item.RequestID)
				item.ID = itemID
				return nil
			})

		item, err := svc.CreateItem(context.Background(), ownerID, req)

		require.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc, m := newItemService(t)
		m.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, apperrors.ErrUserNotFound)

		item, err := svc.CreateItem(context.Background(), ownerID, req)

		assert.Nil(t, item)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("links existing request", func(t *testing.T) {
		svc, m := newItemService(t)
		withRequest := *req
		withRequest.RequestID = int64Ptr(7)

		m.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil)
		m.requests.EXPECT().Exists(gomock.Any(), int64(7)).Return(true, nil)
		m.items.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		item, err := svc.CreateItem(context.Background(), ownerID, &withRequest)

		require.NoError(t, err)
		require.NotNil(t, item.RequestID)
		assert.Equal(t, int64(7), *item.RequestID)
	})

	t.Run("drops unknown request id", func(t *testing.T) {
		svc, m := newItemService(t)
		withRequest := *req
		withRequest.RequestID = int64Ptr(99)

		m.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil)
		m.requests.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)
		m.items.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		item, err := svc.CreateItem(context.Background(), ownerID, &withRequest)

		require.NoError(t, err)
		assert.Nil(t, item.RequestID)
	})
}

func TestItemService_UpdateItem(t *testing.T) {
	t.Run("owner patches provided fields only", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		item, err := svc.UpdateItem(context.Background(), ownerID, itemID, &models.UpdateItemRequest{Available: boolPtr(false)})

		require.NoError(t, err)
		assert.False(t, item.Available)
		assert.Equal(t, "Drill", item.Name)
		assert.Equal(t, "Cordless", item.Description)
	})

	t.Run("item not found", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, apperrors.ErrItemNotFound)

		_, err := svc.UpdateItem(context.Background(), ownerID, itemID, &models.UpdateItemRequest{Name: strPtr("X")})

		assert.Equal(t, apperrors.ErrItemNotFound, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.users.EXPECT().FindByID(gomock.Any(), strangerID).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.UpdateItem(context.Background(), strangerID, itemID, &models.UpdateItemRequest{Name: strPtr("X")})

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(&models.User{ID: bookerID}, nil)

		_, err := svc.UpdateItem(context.Background(), bookerID, itemID, &models.UpdateItemRequest{Name: strPtr("Mine now")})

		assert.Equal(t, apperrors.ErrNotItemOwner, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestItemService_GetItem(t *testing.T) {
	h := time.Hour
	bookings := []models.Booking{
		{ID: 1, ItemID: itemID, BookerID: bookerID, Start: fixedNow.Add(-48 * h), End: fixedNow.Add(-24 * h), Status: models.StatusApproved},
		{ID: 2, ItemID: itemID, BookerID: bookerID, Start: fixedNow.Add(24 * h), End: fixedNow.Add(48 * h), Status: models.StatusWaiting},
	}
	comments := []models.Comment{{ID: 5, ItemID: itemID, Text: "Great", AuthorName: "Booker"}}

	t.Run("owner sees last and next booking", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.comments.EXPECT().FindByItemIDs(gomock.Any(), []int64{itemID}).Return(comments, nil)
		m.bookings.EXPECT().FindForSummary(gomock.Any(), []int64{itemID}).Return(bookings, nil)

		item, err := svc.GetItem(context.Background(), ownerID, itemID)

		require.NoError(t, err)
		require.NotNil(t, item.LastBooking)
		require.NotNil(t, item.NextBooking)
		assert.Equal(t, int64(1), item.LastBooking.ID)
		assert.Equal(t, int64(2), item.NextBooking.ID)
		assert.Len(t, item.Comments, 1)
	})

	t.Run("other users see comments only", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.comments.EXPECT().FindByItemIDs(gomock.Any(), []int64{itemID}).Return(comments, nil)

		item, err := svc.GetItem(context.Background(), bookerID, itemID)

		require.NoError(t, err)
		assert.Nil(t, item.LastBooking)
		assert.Nil(t, item.NextBooking)
		assert.Equal(t, "Great", item.Comments[0].Text)
	})

	t.Run("item not found", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, apperrors.ErrItemNotFound)

		_, err := svc.GetItem(context.Background(), ownerID, itemID)

		assert.Equal(t, apperrors.ErrItemNotFound, err)
	})
}

func TestItemService_ListOwnerItems(t *testing.T) {
	svc, m := newItemService(t)
	page := pagination.Default
	second := availableItem()
	second.ID = itemID + 1

	m.items.EXPECT().FindByOwner(gomock.Any(), ownerID, page).Return([]models.Item{*availableItem(), *second}, nil)
	m.comments.EXPECT().FindByItemIDs(gomock.Any(), []int64{itemID, itemID + 1}).Return([]models.Comment{{ID: 1, ItemID: itemID + 1}}, nil)
	m.bookings.EXPECT().FindForSummary(gomock.Any(), []int64{itemID, itemID + 1}).Return([]models.Booking{
		{ID: 3, ItemID: itemID, Start: fixedNow.Add(time.Hour), Status: models.StatusWaiting},
	}, nil)

	items, err := svc.ListOwnerItems(context.Background(), ownerID, page)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].NextBooking)
	assert.Equal(t, int64(3), items[0].NextBooking.ID)
	assert.Empty(t, items[0].Comments)
	assert.Nil(t, items[1].NextBooking)
	assert.Len(t, items[1].Comments, 1)
}

func TestItemService_ListOwnerItems_Empty(t *testing.T) {
	svc, m := newItemService(t)
	m.items.EXPECT().FindByOwner(gomock.Any(), ownerID, pagination.Default).Return([]models.Item{}, nil)

	items, err := svc.ListOwnerItems(context.Background(), ownerID, pagination.Default)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_SearchAndDelete(t *testing.T) {
	svc, m := newItemService(t)
	m.items.EXPECT().Search(gomock.Any(), "drill", pagination.Default).Return([]models.Item{*availableItem()}, nil)
	m.items.EXPECT().Delete(gomock.Any(), itemID).Return(nil)

	items, err := svc.SearchItems(context.Background(), "drill", pagination.Default)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.NoError(t, svc.DeleteItem(context.Background(), itemID))
}

func TestItemService_AddComment(t *testing.T) {
	req := &models.CreateCommentRequest{Text: "Worked great"}
	author := &models.User{ID: bookerID, Name: "Booker"}

	t.Run("booker with finished approved booking comments", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(author, nil)
		m.bookings.EXPECT().ExistsCompleted(gomock.Any(), bookerID, itemID, fixedNow).Return(true, nil)
		m.comments.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *models.Comment) error {
				assert.Equal(t, fixedNow, c.Created)
				assert.Equal(t, bookerID, c.AuthorID)
				c.ID = 1
				return nil
			})

		comment, err := svc.AddComment(context.Background(), bookerID, itemID, req)

		require.NoError(t, err)
		assert.Equal(t, "Booker", comment.AuthorName)
		assert.Equal(t, itemID, comment.ItemID)
	})

	t.Run("no finished booking", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.users.EXPECT().FindByID(gomock.Any(), bookerID).Return(author, nil)
		m.bookings.EXPECT().ExistsCompleted(gomock.Any(), bookerID, itemID, fixedNow).Return(false, nil)

		comment, err := svc.AddComment(context.Background(), bookerID, itemID, req)

		assert.Nil(t, comment)
		assert.Equal(t, apperrors.ErrCompletedBookingNotFound, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)
		assert.Equal(t, "booking not found", err.Error())
	})

	t.Run("item not found", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, apperrors.ErrItemNotFound)

		_, err := svc.AddComment(context.Background(), bookerID, itemID, req)

		assert.Equal(t, apperrors.ErrItemNotFound, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, m := newItemService(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(availableItem(), nil)
		m.users.EXPECT().FindByID(gomock.Any(), strangerID).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.AddComment(context.Background(), strangerID, itemID, req)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
