// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"shareit/internal/models"
)

var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with a unique email.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			Name:  "Test User",
			Email: fmt.Sprintf("user-%d@example.com", next()),
		},
	}
}

func (b *UserBuilder) WithID(id int64) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	u := b.user
	return &u
}

// ===== Item Fixtures =====

// ItemBuilder provides fluent API for building test items.
type ItemBuilder struct {
	item models.Item
}

// NewItem creates an available item. Set the owner before persisting.
func NewItem() *ItemBuilder {
	n := next()
	return &ItemBuilder{
		item: models.Item{
			Name:        fmt.Sprintf("Item %d", n),
			Description: "A thing worth lending",
			Available:   true,
		},
	}
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.item.ID = id
	return b
}

func (b *ItemBuilder) WithOwnerID(ownerID int64) *ItemBuilder {
	b.item.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.item.Description = description
	return b
}

func (b *ItemBuilder) WithRequestID(requestID int64) *ItemBuilder {
	b.item.RequestID = &requestID
	return b
}

func (b *ItemBuilder) Unavailable() *ItemBuilder {
	b.item.Available = false
	return b
}

func (b *ItemBuilder) Build() models.Item {
	return b.item
}

func (b *ItemBuilder) BuildPtr() *models.Item {
	it := b.item
	return &it
}

// ===== Item Request Fixtures =====

// ItemRequestBuilder provides fluent API for building test item requests.
type ItemRequestBuilder struct {
	request models.ItemRequest
}

func NewItemRequest() *ItemRequestBuilder {
	return &ItemRequestBuilder{
		request: models.ItemRequest{
			Description: "Looking for something to borrow",
			Created:     time.Now().UTC().Truncate(time.Second),
		},
	}
}

func (b *ItemRequestBuilder) WithRequestorID(requestorID int64) *ItemRequestBuilder {
	b.request.RequestorID = requestorID
	return b
}

func (b *ItemRequestBuilder) WithDescription(description string) *ItemRequestBuilder {
	b.request.Description = description
	return b
}

func (b *ItemRequestBuilder) CreatedAt(t time.Time) *ItemRequestBuilder {
	b.request.Created = t.UTC()
	return b
}

func (b *ItemRequestBuilder) BuildPtr() *models.ItemRequest {
	r := b.request
	return &r
}

// ===== Booking Fixtures =====

// BookingBuilder provides fluent API for building test bookings.
type BookingBuilder struct {
	booking models.Booking
}

// NewBooking creates a WAITING booking for tomorrow, one day long.
func NewBooking() *BookingBuilder {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &BookingBuilder{
		booking: models.Booking{
			Start:  start,
			End:    start.Add(24 * time.Hour),
			Status: models.StatusWaiting,
		},
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.booking.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(itemID int64) *BookingBuilder {
	b.booking.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID int64) *BookingBuilder {
	b.booking.BookerID = bookerID
	return b
}

// Between sets the period; times are stored in UTC.
func (b *BookingBuilder) Between(start, end time.Time) *BookingBuilder {
	b.booking.Start = start.UTC()
	b.booking.End = end.UTC()
	return b
}

// Past places the booking entirely before now.
func (b *BookingBuilder) Past() *BookingBuilder {
	end := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	return b.Between(end.Add(-24*time.Hour), end)
}

// Current places now inside the booking.
func (b *BookingBuilder) Current() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return b.Between(now.Add(-time.Hour), now.Add(time.Hour))
}

func (b *BookingBuilder) WithStatus(status models.BookingStatus) *BookingBuilder {
	b.booking.Status = status
	return b
}

func (b *BookingBuilder) Approved() *BookingBuilder {
	return b.WithStatus(models.StatusApproved)
}

func (b *BookingBuilder) Rejected() *BookingBuilder {
	return b.WithStatus(models.StatusRejected)
}

func (b *BookingBuilder) Build() models.Booking {
	return b.booking
}

func (b *BookingBuilder) BuildPtr() *models.Booking {
	bk := b.booking
	return &bk
}

// ===== Comment Fixtures =====

// CommentBuilder provides fluent API for building test comments.
type CommentBuilder struct {
	comment models.Comment
}

func NewComment() *CommentBuilder {
	return &CommentBuilder{
		comment: models.Comment{
			Text:    "Worked great, thanks!",
			Created: time.Now().UTC().Truncate(time.Second),
		},
	}
}

func (b *CommentBuilder) WithItemID(itemID int64) *CommentBuilder {
	b.comment.ItemID = itemID
	return b
}

func (b *CommentBuilder) WithAuthorID(authorID int64) *CommentBuilder {
	b.comment.AuthorID = authorID
	return b
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.comment.Text = text
	return b
}

func (b *CommentBuilder) BuildPtr() *models.Comment {
	c := b.comment
	return &c
}
