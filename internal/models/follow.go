package models

import "time"

// Follow is a follower edge: FollowerID is notified of FollowingID's new
// posts. Unique per pair.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  string    `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID string    `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
