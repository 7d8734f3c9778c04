package models

import "time"

// Notification kinds, one per listener policy.
const (
	NotificationCommentReply = "comment_reply"
	NotificationPostComment  = "post_comment"
	NotificationPostLike     = "post_like"
	NotificationFollow       = "follow"
	NotificationPostNew      = "post_new"
)

// Notification is a per-recipient record created by the notification
// listener. Rows are written once, flipped to read by the recipient, and
// never hard-deleted.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	RecipientID string    `json:"recipient_id" gorm:"index"`
	SenderID    string    `json:"sender_id" gorm:"index"`
	Kind        string    `json:"kind" gorm:"size:30;index"`
	ReferenceID string    `json:"reference_id"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// NotificationWithSender is a Notification joined with the sender's username.
type NotificationWithSender struct {
	Notification
	SenderName string `json:"sender_name"`
}
