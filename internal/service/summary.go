package service

import (
	"time"

	"shareit/internal/models"
)

// SummarizeBookings picks the last and next bookings of one item relative to now.
// REJECTED bookings are ignored. last is the latest start strictly before now,
// next the earliest start strictly after now; equal starts resolve to the lower id.
func SummarizeBookings(bookings []models.Booking, now time.Time) (last, next *models.BookingShort) {
	var lastB, nextB *models.Booking

	for i := range bookings {
		b := &bookings[i]
		if b.Status == models.StatusRejected {
			continue
		}

		switch {
		case b.Start.Before(now):
			if lastB == nil || b.Start.After(lastB.Start) || (b.Start.Equal(lastB.Start) && b.ID < lastB.ID) {
				lastB = b
			}
		case b.Start.After(now):
			if nextB == nil || b.Start.Before(nextB.Start) || (b.Start.Equal(nextB.Start) && b.ID < nextB.ID) {
				nextB = b
			}
		}
	}

	if lastB != nil {
		last = lastB.Short()
	}
	if nextB != nil {
		next = nextB.Short()
	}
	return last, next
}
