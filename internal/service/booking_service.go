package service

import (
	"context"
	"time"

	"shareit/internal/authz"
	apperrors "shareit/internal/errors"
	"shareit/internal/metrics"
	"shareit/internal/models"
	"shareit/internal/pagination"
	"shareit/internal/repository"

	"github.com/rs/zerolog"
)

// BookingService handles the booking lifecycle: creation, owner decision and listings.
type BookingService struct {
	bookings repository.BookingRepository
	items    repository.ItemRepository
	users    repository.UserRepository
	authz    authz.Authorizer
	log      *zerolog.Logger
	now      func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings repository.BookingRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	authorizer authz.Authorizer,
	log *zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		authz:    authorizer,
		log:      log,
		now:      utcNow,
	}
}

// CreateBooking reserves an item for the requester. Checks run in a fixed order
// and the first failure is returned.
func (s *BookingService) CreateBooking(ctx context.Context, requesterID int64, req *models.CreateBookingRequest) (*models.Booking, error) {
	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanPerformOnItem(item, requesterID, authz.ActionItemBook) {
		return nil, apperrors.ErrOwnerCannotBook
	}

	if !req.End.After(req.Start) {
		return nil, apperrors.ErrInvalidBookingTime
	}

	booker, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if !item.Available {
		return nil, apperrors.ErrItemUnavailable
	}

	booking := &models.Booking{
		Start:    req.Start.UTC(),
		End:      req.End.UTC(),
		ItemID:   item.ID,
		BookerID: requesterID,
		Status:   models.StatusWaiting,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Item = item
	booking.Booker = booker

	metrics.IncBookingCreated()
	s.log.Info().
		Int64("bookingId", booking.ID).
		Int64("itemId", item.ID).
		Int64("bookerId", requesterID).
		Msg("booking created")
	return booking, nil
}

// SetApproval lets the item owner approve or reject a WAITING booking.
func (s *BookingService) SetApproval(ctx context.Context, callerID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role := s.authz.BookingRole(booking, callerID)
	if role == authz.RoleGuest {
		return nil, apperrors.ErrBookingAccessDenied
	}

	if role == authz.RoleOwner && booking.Status == models.StatusApproved {
		return nil, apperrors.ErrBookingAlreadyApproved
	}

	if !s.authz.CanPerformOnBooking(booking, callerID, authz.ActionBookingApprove) {
		return nil, apperrors.ErrOnlyOwnerCanApprove
	}

	if booking.Status.IsTerminal() {
		return nil, apperrors.ErrStatusUpdateUnavailable
	}

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}

	// A concurrent decision may have landed since the read above.
	ok, err := s.bookings.UpdateStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrStatusUpdateUnavailable
	}
	booking.Status = status

	metrics.IncBookingTransition(string(status))
	s.log.Info().
		Int64("bookingId", bookingID).
		Str("status", string(status)).
		Msg("booking status changed")
	return booking, nil
}

// GetBooking returns a booking to its booker or the item owner.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanPerformOnBooking(booking, userID, authz.ActionBookingView) {
		return nil, apperrors.ErrBookingAccessDenied
	}

	return booking, nil
}

// ListForBooker returns the user's own bookings filtered by state, newest start first.
func (s *BookingService) ListForBooker(ctx context.Context, userID int64, state string, page pagination.Page) ([]models.Booking, error) {
	parsed, err := s.resolveListing(ctx, userID, state)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindByBooker(ctx, userID, parsed, s.now(), page)
}

// ListForOwner returns bookings of all items owned by ownerID filtered by state.
func (s *BookingService) ListForOwner(ctx context.Context, ownerID int64, state string, page pagination.Page) ([]models.Booking, error) {
	parsed, err := s.resolveListing(ctx, ownerID, state)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindByOwner(ctx, ownerID, parsed, s.now(), page)
}

// resolveListing checks that the user exists, then parses the state filter.
func (s *BookingService) resolveListing(ctx context.Context, userID int64, state string) (models.BookingState, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return "", err
	}

	parsed, ok := models.ParseBookingState(state)
	if !ok {
		return "", apperrors.UnknownState(state)
	}
	return parsed, nil
}
