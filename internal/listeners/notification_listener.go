package listeners

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/pkg/events"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// CommentLookup resolves a comment by ID.
type CommentLookup interface {
	GetCommentByID(id string) (*models.Comment, error)
}

// PostLookup resolves a post by ID.
type PostLookup interface {
	GetPostByID(id string) (*models.Post, error)
}

// FollowerSource resolves the fan-out audience for an author.
type FollowerSource interface {
	GetFollowerIDs(userID string) ([]string, error)
}

// NotificationStore is the write side of the notification repository.
type NotificationStore interface {
	CreateNotification(notification *models.Notification) error
	CreateNotifications(notifications []models.Notification) error
}

// NotificationListener translates domain events into notification rows.
// It is the only writer path into the notification store. All of its work is
// best-effort: errors are reported to the bus, which logs and swallows them,
// so a failing notification never affects the interaction that caused it.
type NotificationListener struct {
	comments      CommentLookup
	posts         PostLookup
	followers     FollowerSource
	notifications NotificationStore
	logger        *log.Logger
}

// NewNotificationListener creates a NotificationListener.
func NewNotificationListener(comments CommentLookup, posts PostLookup, followers FollowerSource, notifications NotificationStore) *NotificationListener {
	return &NotificationListener{
		comments:      comments,
		posts:         posts,
		followers:     followers,
		notifications: notifications,
		logger:        log.New("notifications"),
	}
}

// Register subscribes the listener to every event kind on the bus.
func (l *NotificationListener) Register(bus *events.Bus) {
	for _, kind := range events.Kinds() {
		bus.Subscribe(kind, l.HandleEvent)
	}
}

// HandleEvent dispatches one domain event to its notification policy. The
// switch is exhaustive over the event variants; a new variant that reaches
// the default arm is a wiring bug and is reported as an error.
func (l *NotificationListener) HandleEvent(ctx context.Context, evt events.Event) error {
	switch e := evt.(type) {
	case events.CommentCreated:
		return l.handleCommentCreated(e)
	case events.PostLiked:
		return l.handlePostLiked(e)
	case events.UserFollowed:
		return l.handleUserFollowed(e)
	case events.PostPublished:
		return l.handlePostPublished(e)
	default:
		return fmt.Errorf("no notification policy for event kind %q", evt.Kind())
	}
}

// handleCommentCreated notifies the parent comment's author for replies, or
// the post's author for root comments.
func (l *NotificationListener) handleCommentCreated(e events.CommentCreated) error {
	if e.ParentID != "" {
		parent, err := l.comments.GetCommentByID(e.ParentID)
		if err != nil {
			return ignoreNotFound(err)
		}
		return l.notify(parent.UserID, e.AuthorID, models.NotificationCommentReply, e.PostID)
	}

	post, err := l.posts.GetPostByID(e.PostID)
	if err != nil {
		return ignoreNotFound(err)
	}
	return l.notify(post.CreatedBy, e.AuthorID, models.NotificationPostComment, e.PostID)
}

func (l *NotificationListener) handlePostLiked(e events.PostLiked) error {
	post, err := l.posts.GetPostByID(e.PostID)
	if err != nil {
		return ignoreNotFound(err)
	}
	return l.notify(post.CreatedBy, e.LikerID, models.NotificationPostLike, e.PostID)
}

func (l *NotificationListener) handleUserFollowed(e events.UserFollowed) error {
	return l.notify(e.TargetID, e.FollowerID, models.NotificationFollow, e.FollowerID)
}

// handlePostPublished fans the new-post notification out to every follower of
// the author. The writes are independent: a failure for one recipient must
// not drop the others, so the store batches with row-level fallback and the
// aggregated error surfaces here for the bus to log.
func (l *NotificationListener) handlePostPublished(e events.PostPublished) error {
	followerIDs, err := l.followers.GetFollowerIDs(e.AuthorID)
	if err != nil {
		return ignoreNotFound(err)
	}

	batch := make([]models.Notification, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		if followerID == e.AuthorID {
			continue
		}
		batch = append(batch, models.Notification{
			ID:          uuid.NewString(),
			RecipientID: followerID,
			SenderID:    e.AuthorID,
			Kind:        models.NotificationPostNew,
			ReferenceID: e.PostID,
		})
	}
	if len(batch) == 0 {
		return nil
	}
	l.logger.Debugf("post %s: fan-out to %d followers", e.PostID, len(batch))
	return l.notifications.CreateNotifications(batch)
}

// notify writes one notification, suppressing self-notification
// unconditionally: a user is never notified about their own action.
func (l *NotificationListener) notify(recipientID, senderID, kind, referenceID string) error {
	if recipientID == senderID {
		return nil
	}
	return l.notifications.CreateNotification(&models.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Kind:        kind,
		ReferenceID: referenceID,
	})
}

// ignoreNotFound keeps missing references silent: notifications are a
// best-effort side channel, so an event whose post or parent comment is gone
// simply produces nothing. Other lookup errors still surface to the bus log.
func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
