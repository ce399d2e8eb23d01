// Package models defines data structures for the application.
package models

import "time"

// User represents a registered user who can own and borrow items.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey" example:"1"`
	Name      string    `json:"name" gorm:"size:255;not null" example:"John Doe"`
	Email     string    `json:"email" gorm:"size:512;uniqueIndex;not null" example:"user@example.com"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=255" example:"John Doe"`
	Email string `json:"email" binding:"required,email,max=512" example:"user@example.com"`
}

// UpdateUserRequest is the payload for patching a user.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,notblank,max=255" example:"Jane Doe"`
	Email *string `json:"email" binding:"omitempty,email,max=512" example:"newemail@example.com"`
}
