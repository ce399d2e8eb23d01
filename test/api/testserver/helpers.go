//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/models"
	"shareit/test/testutil"

	"github.com/stretchr/testify/require"
)

// UserHelper creates users through the API.
type UserHelper struct {
	server *TestServer
}

// NewUserHelper creates a new user helper.
func NewUserHelper(server *TestServer) *UserHelper {
	return &UserHelper{server: server}
}

// CreateUser registers a user and returns the response data.
func (uh *UserHelper) CreateUser(t *testing.T, name, email string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{Name: name, Email: email}

	w := testutil.MakeRequest(t, uh.server.Router, http.MethodPost, "/users", req)
	require.Equal(t, http.StatusCreated, w.Code, "create user should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create user response should be successful")
	return resp.Data
}

// CreateUserID registers a user and returns only its id.
func (uh *UserHelper) CreateUserID(t *testing.T, name, email string) int64 {
	t.Helper()
	return GetIDFromResponse(t, uh.CreateUser(t, name, email))
}

// ItemHelper creates items through the API.
type ItemHelper struct {
	server *TestServer
}

// NewItemHelper creates a new item helper.
func NewItemHelper(server *TestServer) *ItemHelper {
	return &ItemHelper{server: server}
}

// CreateItem adds an available item owned by ownerID.
func (ih *ItemHelper) CreateItem(t *testing.T, ownerID int64, name, description string) map[string]interface{} {
	t.Helper()
	return ih.CreateItemWith(t, ownerID, map[string]interface{}{
		"name":        name,
		"description": description,
		"available":   true,
	})
}

// CreateItemWith posts an arbitrary item body and expects 201.
func (ih *ItemHelper) CreateItemWith(t *testing.T, ownerID int64, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := testutil.MakeSharerRequest(t, ih.server.Router, http.MethodPost, "/items", ownerID, body)
	require.Equal(t, http.StatusCreated, w.Code, "create item should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create item response should be successful")
	return resp.Data
}

// BookingHelper creates and decides bookings through the API.
type BookingHelper struct {
	server *TestServer
}

// NewBookingHelper creates a new booking helper.
func NewBookingHelper(server *TestServer) *BookingHelper {
	return &BookingHelper{server: server}
}

// CreateBooking books itemID for bookerID over [start, end].
func (bh *BookingHelper) CreateBooking(t *testing.T, bookerID, itemID int64, start, end time.Time) map[string]interface{} {
	t.Helper()

	w := testutil.MakeSharerRequest(t, bh.server.Router, http.MethodPost, "/bookings", bookerID, BookingBody(itemID, start, end))
	require.Equal(t, http.StatusCreated, w.Code, "create booking should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create booking response should be successful")
	return resp.Data
}

// Decide approves or rejects a booking as ownerID and returns the raw status code.
func (bh *BookingHelper) Decide(t *testing.T, ownerID, bookingID int64, approved bool) int {
	t.Helper()

	path := fmt.Sprintf("/bookings/%d?approved=%t", bookingID, approved)
	w := testutil.MakeSharerRequest(t, bh.server.Router, http.MethodPatch, path, ownerID, nil)
	return w.Code
}

// SeedBooking inserts a booking directly, bypassing the future-start check.
func (bh *BookingHelper) SeedBooking(t *testing.T, booking *models.Booking) *models.Booking {
	t.Helper()

	err := bh.server.BookingRepo.Create(context.Background(), booking)
	require.NoError(t, err, "failed to seed booking")
	return booking
}

// BookingBody builds a booking request body with RFC 3339 times.
func BookingBody(itemID int64, start, end time.Time) map[string]interface{} {
	return map[string]interface{}{
		"itemId": itemID,
		"start":  start.UTC().Format(time.RFC3339),
		"end":    end.UTC().Format(time.RFC3339),
	}
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the numeric id from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) int64 {
	t.Helper()

	id, ok := data["id"].(float64)
	require.True(t, ok, "id should be a number in response data")
	return int64(id)
}
