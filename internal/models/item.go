package models

import "time"

// Item represents a lendable object listed by its owner.
type Item struct {
	ID          int64     `json:"id" gorm:"primaryKey" example:"1"`
	Name        string    `json:"name" gorm:"size:255;not null" example:"Drill"`
	Description string    `json:"description" gorm:"size:1000;not null" example:"Cordless drill with two batteries"`
	Available   bool      `json:"available" gorm:"not null;index" example:"true"`
	OwnerID     int64     `json:"ownerId" gorm:"not null;index" example:"1"`
	RequestID   *int64    `json:"requestId" gorm:"index" example:"3"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Populated for item views, never stored.
	LastBooking *BookingShort `json:"lastBooking,omitempty" gorm:"-"`
	NextBooking *BookingShort `json:"nextBooking,omitempty" gorm:"-"`
	Comments    []Comment     `json:"comments,omitempty" gorm:"-"`
}

// CreateItemRequest is the payload for listing a new item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=255" example:"Drill"`
	Description string `json:"description" binding:"required,notblank,max=1000" example:"Cordless drill with two batteries"`
	Available   *bool  `json:"available" binding:"required" example:"true"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0" example:"3"`
}

// UpdateItemRequest is the payload for patching an item.
// Nil fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=255" example:"Hammer drill"`
	Description *string `json:"description" binding:"omitempty,notblank,max=1000" example:"Now with a carry case"`
	Available   *bool   `json:"available" example:"false"`
}
