package models

import (
	"time"

	"gorm.io/gorm"
)

// Like marks that a user likes a post. Unliking soft-deletes the row, so a
// re-like restores it instead of inserting a duplicate.
type Like struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	PostID    string         `json:"post_id" gorm:"index"`
	UserID    string         `json:"user_id" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// ToggleLikeResult reports the state after a like toggle.
type ToggleLikeResult struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
	Count  int64  `json:"count"`
}
