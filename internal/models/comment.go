package models

import "time"

// Comment is feedback left on an item after a completed rental.
type Comment struct {
	ID       int64     `json:"id" gorm:"primaryKey" example:"1"`
	Text     string    `json:"text" gorm:"size:2000;not null" example:"Worked great, thanks!"`
	ItemID   int64     `json:"itemId" gorm:"not null;index" example:"1"`
	AuthorID int64     `json:"-" gorm:"not null;index"`
	Created  time.Time `json:"created" example:"2024-01-20T18:00:00Z"`

	Author     *User  `json:"-" gorm:"foreignKey:AuthorID"`
	AuthorName string `json:"authorName" gorm:"-" example:"Jane Doe"`
}

// CreateCommentRequest is the payload for commenting on an item.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,notblank,max=2000" example:"Worked great, thanks!"`
}
