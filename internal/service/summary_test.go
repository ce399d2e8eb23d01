package service

import (
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id int64, start time.Time, status models.BookingStatus) models.Booking {
	return models.Booking{ID: id, BookerID: 100 + id, Start: start, End: start.Add(time.Hour), Status: status}
}

func TestSummarizeBookings(t *testing.T) {
	h := time.Hour

	t.Run("no bookings", func(t *testing.T) {
		last, next := SummarizeBookings(nil, fixedNow)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("picks latest past start and earliest future start", func(t *testing.T) {
		bookings := []models.Booking{
			booking(1, fixedNow.Add(-72*h), models.StatusApproved),
			booking(2, fixedNow.Add(-2*h), models.StatusApproved),
			booking(3, fixedNow.Add(48*h), models.StatusWaiting),
			booking(4, fixedNow.Add(24*h), models.StatusApproved),
		}

		last, next := SummarizeBookings(bookings, fixedNow)

		require.NotNil(t, last)
		require.NotNil(t, next)
		assert.Equal(t, int64(2), last.ID)
		assert.Equal(t, int64(102), last.BookerID)
		assert.Equal(t, int64(4), next.ID)
	})

	t.Run("ignores rejected bookings", func(t *testing.T) {
		bookings := []models.Booking{
			booking(1, fixedNow.Add(-72*h), models.StatusApproved),
			booking(2, fixedNow.Add(-1*h), models.StatusRejected),
			booking(3, fixedNow.Add(1*h), models.StatusRejected),
		}

		last, next := SummarizeBookings(bookings, fixedNow)

		require.NotNil(t, last)
		assert.Equal(t, int64(1), last.ID)
		assert.Nil(t, next)
	})

	t.Run("booking starting exactly now is neither", func(t *testing.T) {
		last, next := SummarizeBookings([]models.Booking{booking(1, fixedNow, models.StatusApproved)}, fixedNow)
		assert.Nil(t, last)
		assert.Nil(t, next)
	})

	t.Run("equal starts resolve to the lowest id", func(t *testing.T) {
		bookings := []models.Booking{
			booking(9, fixedNow.Add(-h), models.StatusApproved),
			booking(3, fixedNow.Add(-h), models.StatusApproved),
			booking(8, fixedNow.Add(h), models.StatusWaiting),
			booking(5, fixedNow.Add(h), models.StatusWaiting),
		}

		last, next := SummarizeBookings(bookings, fixedNow)

		assert.Equal(t, int64(3), last.ID)
		assert.Equal(t, int64(5), next.ID)
	})

	t.Run("current booking counts as last", func(t *testing.T) {
		current := models.Booking{ID: 1, Start: fixedNow.Add(-h), End: fixedNow.Add(h), Status: models.StatusApproved}

		last, next := SummarizeBookings([]models.Booking{current}, fixedNow)

		require.NotNil(t, last)
		assert.Equal(t, int64(1), last.ID)
		assert.Equal(t, fixedNow.Add(h), last.End)
		assert.Nil(t, next)
	})
}
