package models

import (
	"strings"
	"time"
)

// BookingStatus is the persisted lifecycle state of a booking.
type BookingStatus string

const (
	// StatusWaiting indicates a new booking awaiting the owner's decision.
	StatusWaiting BookingStatus = "WAITING"
	// StatusApproved indicates the owner accepted the booking.
	StatusApproved BookingStatus = "APPROVED"
	// StatusRejected indicates the owner declined the booking.
	StatusRejected BookingStatus = "REJECTED"
	// StatusCanceled is reserved for booker-initiated cancellation. Nothing sets it yet.
	StatusCanceled BookingStatus = "CANCELED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s BookingStatus) IsTerminal() bool {
	return s != StatusWaiting
}

// BookingState selects bookings in list queries. It is a filter, not a status.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var bookingStates = map[string]BookingState{
	string(StateAll):      StateAll,
	string(StateCurrent):  StateCurrent,
	string(StatePast):     StatePast,
	string(StateFuture):   StateFuture,
	string(StateWaiting):  StateWaiting,
	string(StateRejected): StateRejected,
}

// ParseBookingState parses a state filter, ignoring case.
func ParseBookingState(s string) (BookingState, bool) {
	state, ok := bookingStates[strings.ToUpper(strings.TrimSpace(s))]
	return state, ok
}

// Booking is a reservation of an item by a non-owner for a time window.
type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey" example:"1"`
	Start     time.Time     `json:"start" gorm:"column:start_at;not null;index" example:"2030-01-15T09:00:00Z"`
	End       time.Time     `json:"end" gorm:"column:end_at;not null;index" example:"2030-01-16T09:00:00Z"`
	ItemID    int64         `json:"-" gorm:"not null;index"`
	BookerID  int64         `json:"-" gorm:"not null;index"`
	Status    BookingStatus `json:"status" gorm:"size:16;not null;index" example:"WAITING"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`

	Item   *Item `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Booker *User `json:"booker,omitempty" gorm:"foreignKey:BookerID"`
}

// BookingShort is the compact booking form attached to item views.
type BookingShort struct {
	ID       int64     `json:"id" example:"7"`
	BookerID int64     `json:"bookerId" example:"2"`
	Start    time.Time `json:"start" example:"2030-01-15T09:00:00Z"`
	End      time.Time `json:"end" example:"2030-01-16T09:00:00Z"`
}

// Short returns the compact form of b.
func (b *Booking) Short() *BookingShort {
	return &BookingShort{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

// CreateBookingRequest is the payload for booking an item.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required,gt=0" example:"1"`
	Start  time.Time `json:"start" binding:"required,future" example:"2030-01-15T09:00:00Z"`
	End    time.Time `json:"end" binding:"required,future" example:"2030-01-16T09:00:00Z"`
}
