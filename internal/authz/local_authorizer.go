package authz

import "shareit/internal/models"

// LocalAuthorizer derives roles from the ownership fields already loaded on the
// item or booking, so it never touches the database.
type LocalAuthorizer struct{}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer() *LocalAuthorizer {
	return &LocalAuthorizer{}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionItemUpdate:       {RoleOwner},
	ActionItemBook:         {RoleGuest},
	ActionItemViewBookings: {RoleOwner},
	ActionBookingView:      {RoleOwner, RoleBooker},
	ActionBookingApprove:   {RoleOwner},
}

// ItemRole returns RoleOwner for the item's owner and RoleGuest for everyone else.
func (a *LocalAuthorizer) ItemRole(item *models.Item, userID int64) string {
	if item != nil && item.OwnerID == userID {
		return RoleOwner
	}
	return RoleGuest
}

// BookingRole returns the user's role relative to a booking. An owner who
// somehow booked their own item is treated as the owner.
func (a *LocalAuthorizer) BookingRole(booking *models.Booking, userID int64) string {
	if booking == nil {
		return RoleGuest
	}
	if booking.Item != nil && booking.Item.OwnerID == userID {
		return RoleOwner
	}
	if booking.BookerID == userID {
		return RoleBooker
	}
	return RoleGuest
}

// CanPerformOnItem checks if a user can perform an action on an item.
func (a *LocalAuthorizer) CanPerformOnItem(item *models.Item, userID int64, action string) bool {
	return allowed(a.ItemRole(item, userID), action)
}

// CanPerformOnBooking checks if a user can perform an action on a booking.
func (a *LocalAuthorizer) CanPerformOnBooking(booking *models.Booking, userID int64, action string) bool {
	return allowed(a.BookingRole(booking, userID), action)
}

func allowed(role, action string) bool {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false // Unknown action
	}

	for _, r := range allowedRoles {
		if r == role {
			return true
		}
	}

	return false
}
