// Package authz decides what a caller may do with items and bookings.
package authz

import "shareit/internal/models"

// Action constants define the authorization actions.
const (
	ActionItemUpdate       = "item:update"
	ActionItemBook         = "item:book"
	ActionItemViewBookings = "item:view_bookings"
	ActionBookingView      = "booking:view"
	ActionBookingApprove   = "booking:approve"
)

// Roles a caller can hold relative to an item or booking.
const (
	RoleOwner  = "owner"
	RoleBooker = "booker"
	RoleGuest  = "guest"
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerformOnItem checks if a user can perform an action on an item.
	CanPerformOnItem(item *models.Item, userID int64, action string) bool

	// CanPerformOnBooking checks if a user can perform an action on a booking.
	// The booking's Item must be loaded.
	CanPerformOnBooking(booking *models.Booking, userID int64, action string) bool

	// ItemRole returns the user's role relative to an item.
	ItemRole(item *models.Item, userID int64) string

	// BookingRole returns the user's role relative to a booking.
	BookingRole(booking *models.Booking, userID int64) string
}
