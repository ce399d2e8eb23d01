// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error below wraps exactly one of these, so handlers
// can branch on the kind with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation failed")
)

// Error is a domain error carrying its kind.
type Error struct {
	kind error
	msg  string
}

// New creates a domain error of the given kind.
func New(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Unwrap returns the error kind.
func (e *Error) Unwrap() error { return e.kind }

// User errors
var (
	ErrUserNotFound      = New(ErrNotFound, "user not found")
	ErrUserAlreadyExists = New(ErrAlreadyExists, "user with this email already exists")
)

// Item errors
var (
	ErrItemNotFound = New(ErrNotFound, "item not found")
	ErrNotItemOwner = New(ErrForbidden, "user is not the owner of the item")
	// ErrItemUnavailable keeps the historical "item not found" wording.
	ErrItemUnavailable = New(ErrInvalidParameter, "item not found")
)

// Item request errors
var (
	ErrItemRequestNotFound = New(ErrNotFound, "item request not found")
)

// Booking errors
var (
	ErrBookingNotFound          = New(ErrNotFound, "booking not found")
	ErrOwnerCannotBook          = New(ErrForbidden, "owner cannot book own item")
	ErrInvalidBookingTime       = New(ErrInvalidParameter, "booking time is set incorrectly")
	ErrBookingAccessDenied      = New(ErrForbidden, "user is neither the booker nor the item owner")
	ErrOnlyOwnerCanApprove      = New(ErrForbidden, "only the item owner may approve or reject a booking")
	ErrBookingAlreadyApproved   = New(ErrAlreadyExists, "booking already approved")
	ErrStatusUpdateUnavailable  = New(ErrNotFound, "status update unavailable")
	ErrCompletedBookingNotFound = New(ErrInvalidParameter, "booking not found")
)

// Request errors
var (
	ErrMissingSharerID = New(ErrValidation, "missing X-Sharer-User-Id header")
	ErrInvalidSharerID = New(ErrValidation, "invalid X-Sharer-User-Id header")
	ErrInvalidID       = New(ErrValidation, "invalid id")
)

// UnknownState reports a booking state filter that is not recognized.
func UnknownState(state string) error {
	return New(ErrInvalidParameter, fmt.Sprintf("Unknown state: %s", state))
}

// Validation wraps a binding failure as a validation error.
func Validation(err error) error {
	return New(ErrValidation, err.Error())
}
