package models

import "time"

// ItemRequest is a user's declared need for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64     `json:"id" gorm:"primaryKey" example:"1"`
	Description string    `json:"description" gorm:"size:1000;not null" example:"Looking for a ladder for the weekend"`
	RequestorID int64     `json:"requestorId" gorm:"not null;index" example:"2"`
	Created     time.Time `json:"created" gorm:"not null;index" example:"2024-01-15T09:30:00Z"`

	// Items listed in response to this request. Derived from items.request_id.
	Items []Item `json:"items" gorm:"-"`
}

// CreateItemRequestRequest is the payload for publishing an item request.
type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required,notblank,max=1000" example:"Looking for a ladder for the weekend"`
}
