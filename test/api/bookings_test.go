//go:build api

package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/models"
	"shareit/test/api/testserver"
	"shareit/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingParties struct {
	ownerID  int64
	bookerID int64
	itemID   int64
}

func setupBookingParties(t *testing.T) bookingParties {
	t.Helper()
	testServer.CleanupBetweenTests(t)

	userHelper := testserver.NewUserHelper(testServer)
	ownerID := userHelper.CreateUserID(t, "Owner", "owner@example.com")
	bookerID := userHelper.CreateUserID(t, "Booker", "booker@example.com")
	item := testserver.NewItemHelper(testServer).CreateItem(t, ownerID, "Drill", "Cordless drill")

	return bookingParties{ownerID: ownerID, bookerID: bookerID, itemID: testserver.GetIDFromResponse(t, item)}
}

// TestCreateBooking tests the POST /bookings endpoint.
func TestCreateBooking(t *testing.T) {
	p := setupBookingParties(t)
	start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)

	t.Run("success - starts WAITING with item and booker", func(t *testing.T) {
		data := testserver.NewBookingHelper(testServer).CreateBooking(t, p.bookerID, p.itemID, start, start.Add(time.Hour))

		assert.Equal(t, string(models.StatusWaiting), data["status"])
		assert.Equal(t, start.Format(time.RFC3339), data["start"])
		item, ok := data["item"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(p.itemID), item["id"])
		booker, ok := data["booker"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(p.bookerID), booker["id"])
	})

	tests := []struct {
		name           string
		userID         int64
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "equal start and end",
			userID:         p.bookerID,
			body:           testserver.BookingBody(p.itemID, start, start),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "end before start",
			userID:         p.bookerID,
			body:           testserver.BookingBody(p.itemID, start.Add(time.Hour), start),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "start in the past",
			userID:         p.bookerID,
			body:           testserver.BookingBody(p.itemID, start.Add(-2*time.Hour), start),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "owner books own item",
			userID:         p.ownerID,
			body:           testserver.BookingBody(p.itemID, start, start.Add(time.Hour)),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown item",
			userID:         p.bookerID,
			body:           testserver.BookingBody(999999, start, start.Add(time.Hour)),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown booker",
			userID:         999999,
			body:           testserver.BookingBody(p.itemID, start, start.Add(time.Hour)),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run("error - "+tt.name, func(t *testing.T) {
			w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodPost, "/bookings", tt.userID, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	t.Run("error - unavailable item", func(t *testing.T) {
		path := fmt.Sprintf("/items/%d", p.itemID)
		w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodPatch, path, p.ownerID, map[string]bool{"available": false})
		require.Equal(t, http.StatusOK, w.Code)

		w = testutil.MakeSharerRequest(t, testServer.Router, http.MethodPost, "/bookings", p.bookerID,
			testserver.BookingBody(p.itemID, start, start.Add(time.Hour)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestSetApproval tests the PATCH /bookings/:id endpoint.
func TestSetApproval(t *testing.T) {
	p := setupBookingParties(t)
	bookingHelper := testserver.NewBookingHelper(testServer)
	start := time.Now().UTC().Add(time.Hour)

	t.Run("approve then re-approve conflicts", func(t *testing.T) {
		booking := bookingHelper.CreateBooking(t, p.bookerID, p.itemID, start, start.Add(time.Hour))
		id := testserver.GetIDFromResponse(t, booking)

		assert.Equal(t, http.StatusOK, bookingHelper.Decide(t, p.ownerID, id, true))
		assert.Equal(t, http.StatusConflict, bookingHelper.Decide(t, p.ownerID, id, true))
		assert.Equal(t, http.StatusConflict, bookingHelper.Decide(t, p.ownerID, id, false))
	})

	t.Run("rejected booking cannot be decided again", func(t *testing.T) {
		booking := bookingHelper.CreateBooking(t, p.bookerID, p.itemID, start, start.Add(time.Hour))
		id := testserver.GetIDFromResponse(t, booking)

		assert.Equal(t, http.StatusOK, bookingHelper.Decide(t, p.ownerID, id, false))
		assert.Equal(t, http.StatusNotFound, bookingHelper.Decide(t, p.ownerID, id, true))
	})

	t.Run("booker cannot approve", func(t *testing.T) {
		booking := bookingHelper.CreateBooking(t, p.bookerID, p.itemID, start, start.Add(time.Hour))
		id := testserver.GetIDFromResponse(t, booking)

		assert.Equal(t, http.StatusNotFound, bookingHelper.Decide(t, p.bookerID, id, true))
	})

	t.Run("missing approved parameter", func(t *testing.T) {
		booking := bookingHelper.CreateBooking(t, p.bookerID, p.itemID, start, start.Add(time.Hour))
		path := fmt.Sprintf("/bookings/%d", testserver.GetIDFromResponse(t, booking))

		w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodPatch, path, p.ownerID, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestGetBooking tests the GET /bookings/:id endpoint.
func TestGetBooking(t *testing.T) {
	p := setupBookingParties(t)
	strangerID := testserver.NewUserHelper(testServer).CreateUserID(t, "Stranger", "stranger@example.com")
	start := time.Now().UTC().Add(time.Hour)
	booking := testserver.NewBookingHelper(testServer).CreateBooking(t, p.bookerID, p.itemID, start, start.Add(time.Hour))
	path := fmt.Sprintf("/bookings/%d", testserver.GetIDFromResponse(t, booking))

	for name, userID := range map[string]int64{"booker": p.bookerID, "owner": p.ownerID} {
		t.Run("visible to "+name, func(t *testing.T) {
			w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodGet, path, userID, nil)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("hidden from others", func(t *testing.T) {
		w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodGet, path, strangerID, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestListBookings tests the GET /bookings and GET /bookings/owner endpoints.
func TestListBookings(t *testing.T) {
	p := setupBookingParties(t)
	bookingHelper := testserver.NewBookingHelper(testServer)
	now := time.Now().UTC().Truncate(time.Second)

	past := bookingHelper.SeedBooking(t, &models.Booking{
		ItemID: p.itemID, BookerID: p.bookerID,
		Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour), Status: models.StatusApproved,
	})
	current := bookingHelper.SeedBooking(t, &models.Booking{
		ItemID: p.itemID, BookerID: p.bookerID,
		Start: now.Add(-time.Hour), End: now.Add(time.Hour), Status: models.StatusApproved,
	})
	future := bookingHelper.CreateBooking(t, p.bookerID, p.itemID, now.Add(24*time.Hour), now.Add(48*time.Hour))
	rejected := bookingHelper.CreateBooking(t, p.bookerID, p.itemID, now.Add(72*time.Hour), now.Add(96*time.Hour))
	require.Equal(t, http.StatusOK, bookingHelper.Decide(t, p.ownerID, testserver.GetIDFromResponse(t, rejected), false))

	tests := []struct {
		state    string
		expected []interface{}
	}{
		{"", []interface{}{rejected["id"], future["id"], float64(current.ID), float64(past.ID)}},
		{"ALL", []interface{}{rejected["id"], future["id"], float64(current.ID), float64(past.ID)}},
		{"CURRENT", []interface{}{float64(current.ID)}},
		{"PAST", []interface{}{float64(past.ID)}},
		{"FUTURE", []interface{}{rejected["id"], future["id"]}},
		{"WAITING", []interface{}{future["id"]}},
		{"REJECTED", []interface{}{rejected["id"]}},
	}

	for _, base := range []struct {
		path   string
		userID int64
	}{
		{"/bookings", p.bookerID},
		{"/bookings/owner", p.ownerID},
	} {
		for _, tt := range tests {
			t.Run(base.path+" state="+tt.state, func(t *testing.T) {
				target := base.path
				if tt.state != "" {
					target += "?state=" + tt.state
				}

				w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodGet, target, base.userID, nil)

				require.Equal(t, http.StatusOK, w.Code)
				resp := testutil.ParseAPIListResponse(t, w)
				ids := make([]interface{}, len(resp.Data))
				for i, b := range resp.Data {
					ids[i] = b["id"]
				}
				assert.Equal(t, tt.expected, ids)
			})
		}
	}

	t.Run("unknown state is rejected by name", func(t *testing.T) {
		w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodGet, "/bookings?state=BOGUS", p.bookerID, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, testutil.ParseAPIResponse(t, w).Error, "BOGUS")
	})

	t.Run("unknown user is checked before state", func(t *testing.T) {
		w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodGet, "/bookings?state=BOGUS", 999999, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("owner without items gets an empty list", func(t *testing.T) {
		w := testutil.MakeSharerRequest(t, testServer.Router, http.MethodGet, "/bookings/owner", p.bookerID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, testutil.ParseAPIListResponse(t, w).Data)
	})
}
