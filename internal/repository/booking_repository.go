package repository

import (
	"context"
	"errors"
	"time"

	apperrors "shareit/internal/errors"
	"shareit/internal/models"
	"shareit/internal/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id int64) (*models.Booking, error)
	// UpdateStatusIfWaiting moves a WAITING booking to status. It reports false
	// when the booking was no longer WAITING.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (bool, error)
	FindByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, page pagination.Page) ([]models.Booking, error)
	FindByOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, page pagination.Page) ([]models.Booking, error)
	// FindForSummary returns the non-rejected bookings of the given items.
	FindForSummary(ctx context.Context, itemIDs []int64) ([]models.Booking, error)
	// ExistsCompleted reports whether bookerID has an APPROVED booking of itemID that ended before now.
	ExistsCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking without touching its item or booker
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

// FindByID loads a booking with its item and booker
func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking

	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status models.BookingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.StatusWaiting).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, page pagination.Page) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("bookings.booker_id = ?", bookerID)
	return r.list(q, state, now, page)
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, page pagination.Page) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.list(q, state, now, page)
}

// list applies the state filter, ordering and page to q
func (r *bookingRepository) list(q *gorm.DB, state models.BookingState, now time.Time, page pagination.Page) ([]models.Booking, error) {
	switch state {
	case models.StateCurrent:
		q = q.Where("bookings.start_at <= ? AND bookings.end_at >= ?", now, now)
	case models.StatePast:
		q = q.Where("bookings.end_at < ?", now)
	case models.StateFuture:
		q = q.Where("bookings.start_at > ?", now)
	case models.StateWaiting:
		q = q.Where("bookings.status = ?", models.StatusWaiting)
	case models.StateRejected:
		q = q.Where("bookings.status = ?", models.StatusRejected)
	}

	bookings := []models.Booking{}
	err := q.
		Preload("Item").
		Preload("Booker").
		Order("bookings.start_at DESC, bookings.id DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindForSummary(ctx context.Context, itemIDs []int64) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if len(itemIDs) == 0 {
		return bookings, nil
	}
	err := r.db.WithContext(ctx).
		Where("item_id IN ? AND status <> ?", itemIDs, models.StatusRejected).
		Order("id").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ExistsCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_at < ?", bookerID, itemID, models.StatusApproved, now).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
