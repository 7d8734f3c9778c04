package models

import "time"

// PostView records the most recent time a user opened a post. One row per
// (user, post); repeat views bump ViewedAt.
type PostView struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_view"`
	PostID   string    `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_view"`
	ViewedAt time.Time `json:"viewed_at"`
}

// HistoryEntry is a PostView joined with post display fields.
type HistoryEntry struct {
	PostID      string    `json:"post_id"`
	ViewedAt    time.Time `json:"viewed_at"`
	PostTitle   string    `json:"post_title"`
	PostExcerpt string    `json:"post_excerpt"`
}
