package listeners

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/anvers19/devfolio/backend/pkg/events"
	"gorm.io/gorm"
)

type stubComments struct {
	comments map[string]*models.Comment
}

func (s *stubComments) GetCommentByID(id string) (*models.Comment, error) {
	if c, ok := s.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubPosts struct {
	posts map[string]*models.Post
}

func (s *stubPosts) GetPostByID(id string) (*models.Post, error) {
	if p, ok := s.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubFollowers struct {
	followers map[string][]string
}

func (s *stubFollowers) GetFollowerIDs(userID string) ([]string, error) {
	return s.followers[userID], nil
}

// stubStore records created notifications and can be told to fail for
// specific recipients. Its batch method keeps the row-isolation contract of
// the real repository: a failing row never drops its neighbors.
type stubStore struct {
	mu      sync.Mutex
	created []models.Notification
	failFor map[string]bool
}

func (s *stubStore) CreateNotification(n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[n.RecipientID] {
		return fmt.Errorf("insert failed for %s", n.RecipientID)
	}
	s.created = append(s.created, *n)
	return nil
}

func (s *stubStore) CreateNotifications(ns []models.Notification) error {
	var errs []error
	for i := range ns {
		if err := s.CreateNotification(&ns[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *stubStore) all() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.created...)
}

func newTestListener(comments *stubComments, posts *stubPosts, followers *stubFollowers, store *stubStore) *NotificationListener {
	if comments == nil {
		comments = &stubComments{comments: map[string]*models.Comment{}}
	}
	if posts == nil {
		posts = &stubPosts{posts: map[string]*models.Post{}}
	}
	if followers == nil {
		followers = &stubFollowers{followers: map[string][]string{}}
	}
	return NewNotificationListener(comments, posts, followers, store)
}

func TestCommentReplyNotifiesParentAuthor(t *testing.T) {
	comments := &stubComments{comments: map[string]*models.Comment{
		"c1": {ID: "c1", PostID: "p1", UserID: "parent-author"},
	}}
	store := &stubStore{}
	l := newTestListener(comments, nil, nil, store)

	err := l.HandleEvent(context.Background(), events.CommentCreated{
		CommentID: "c2", PostID: "p1", AuthorID: "replier", ParentID: "c1",
	})
	if err != nil {
		t.Fatalf("HandleEvent returned %v", err)
	}

	got := store.all()
	if len(got) != 1 {
		t.Fatalf("created %d notifications, want 1", len(got))
	}
	n := got[0]
	if n.RecipientID != "parent-author" || n.SenderID != "replier" {
		t.Errorf("recipient/sender = %s/%s, want parent-author/replier", n.RecipientID, n.SenderID)
	}
	if n.Kind != models.NotificationCommentReply {
		t.Errorf("kind = %s, want %s", n.Kind, models.NotificationCommentReply)
	}
	if n.ReferenceID != "p1" {
		t.Errorf("reference = %s, want p1", n.ReferenceID)
	}
}

func TestRootCommentNotifiesPostAuthor(t *testing.T) {
	posts := &stubPosts{posts: map[string]*models.Post{
		"p1": {ID: "p1", CreatedBy: "post-author"},
	}}
	store := &stubStore{}
	l := newTestListener(nil, posts, nil, store)

	err := l.HandleEvent(context.Background(), events.CommentCreated{
		CommentID: "c1", PostID: "p1", AuthorID: "commenter",
	})
	if err != nil {
		t.Fatalf("HandleEvent returned %v", err)
	}

	got := store.all()
	if len(got) != 1 {
		t.Fatalf("created %d notifications, want 1", len(got))
	}
	if got[0].RecipientID != "post-author" || got[0].Kind != models.NotificationPostComment {
		t.Errorf("got %s/%s, want post-author/%s", got[0].RecipientID, got[0].Kind, models.NotificationPostComment)
	}
}

func TestPostLikedNotifiesPostAuthor(t *testing.T) {
	posts := &stubPosts{posts: map[string]*models.Post{
		"p1": {ID: "p1", CreatedBy: "post-author"},
	}}
	store := &stubStore{}
	l := newTestListener(nil, posts, nil, store)

	if err := l.HandleEvent(context.Background(), events.PostLiked{PostID: "p1", LikerID: "liker"}); err != nil {
		t.Fatalf("HandleEvent returned %v", err)
	}

	got := store.all()
	if len(got) != 1 {
		t.Fatalf("created %d notifications, want 1", len(got))
	}
	if got[0].Kind != models.NotificationPostLike || got[0].ReferenceID != "p1" {
		t.Errorf("got kind=%s ref=%s, want %s/p1", got[0].Kind, got[0].ReferenceID, models.NotificationPostLike)
	}
}

func TestUserFollowedNotifiesTarget(t *testing.T) {
	store := &stubStore{}
	l := newTestListener(nil, nil, nil, store)

	if err := l.HandleEvent(context.Background(), events.UserFollowed{FollowerID: "follower", TargetID: "target"}); err != nil {
		t.Fatalf("HandleEvent returned %v", err)
	}

	got := store.all()
	if len(got) != 1 {
		t.Fatalf("created %d notifications, want 1", len(got))
	}
	n := got[0]
	if n.RecipientID != "target" || n.Kind != models.NotificationFollow || n.ReferenceID != "follower" {
		t.Errorf("got recipient=%s kind=%s ref=%s, want target/%s/follower", n.RecipientID, n.Kind, n.ReferenceID, models.NotificationFollow)
	}
}

func TestSelfActionSuppression(t *testing.T) {
	comments := &stubComments{comments: map[string]*models.Comment{
		"c1": {ID: "c1", PostID: "p1", UserID: "author"},
	}}
	posts := &stubPosts{posts: map[string]*models.Post{
		"p1": {ID: "p1", CreatedBy: "author"},
	}}

	cases := []struct {
		name string
		evt  events.Event
	}{
		{"reply to own comment", events.CommentCreated{CommentID: "c2", PostID: "p1", AuthorID: "author", ParentID: "c1"}},
		{"comment on own post", events.CommentCreated{CommentID: "c3", PostID: "p1", AuthorID: "author"}},
		{"like own post", events.PostLiked{PostID: "p1", LikerID: "author"}},
		{"follow self", events.UserFollowed{FollowerID: "author", TargetID: "author"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{}
			l := newTestListener(comments, posts, nil, store)

			if err := l.HandleEvent(context.Background(), tc.evt); err != nil {
				t.Fatalf("HandleEvent returned %v", err)
			}
			if got := store.all(); len(got) != 0 {
				t.Errorf("created %d notifications, want 0", len(got))
			}
		})
	}
}

func TestMissingReferenceIsSilentNoOp(t *testing.T) {
	cases := []struct {
		name string
		evt  events.Event
	}{
		{"reply to deleted comment", events.CommentCreated{CommentID: "c1", PostID: "p1", AuthorID: "u1", ParentID: "gone"}},
		{"comment on deleted post", events.CommentCreated{CommentID: "c1", PostID: "gone", AuthorID: "u1"}},
		{"like on deleted post", events.PostLiked{PostID: "gone", LikerID: "u1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{}
			l := newTestListener(nil, nil, nil, store)

			if err := l.HandleEvent(context.Background(), tc.evt); err != nil {
				t.Fatalf("HandleEvent returned %v, want nil", err)
			}
			if got := store.all(); len(got) != 0 {
				t.Errorf("created %d notifications, want 0", len(got))
			}
		})
	}
}

func TestPostPublishedFansOutToFollowers(t *testing.T) {
	// The author is erroneously present in its own follower set; fan-out
	// must still skip it.
	followers := &stubFollowers{followers: map[string][]string{
		"author": {"B", "C", "D", "author"},
	}}
	store := &stubStore{}
	l := newTestListener(nil, nil, followers, store)

	if err := l.HandleEvent(context.Background(), events.PostPublished{PostID: "p1", AuthorID: "author"}); err != nil {
		t.Fatalf("HandleEvent returned %v", err)
	}

	got := store.all()
	if len(got) != 3 {
		t.Fatalf("created %d notifications, want 3", len(got))
	}

	recipients := make([]string, len(got))
	for i, n := range got {
		recipients[i] = n.RecipientID
		if n.Kind != models.NotificationPostNew {
			t.Errorf("kind = %s, want %s", n.Kind, models.NotificationPostNew)
		}
		if n.ReferenceID != "p1" {
			t.Errorf("reference = %s, want p1", n.ReferenceID)
		}
		if n.SenderID != "author" {
			t.Errorf("sender = %s, want author", n.SenderID)
		}
	}
	sort.Strings(recipients)
	want := []string{"B", "C", "D"}
	for i, r := range recipients {
		if r != want[i] {
			t.Errorf("recipients = %v, want %v", recipients, want)
			break
		}
	}
}

func TestFanOutIsolatesPerRecipientFailure(t *testing.T) {
	followers := &stubFollowers{followers: map[string][]string{
		"author": {"B", "C", "D"},
	}}
	store := &stubStore{failFor: map[string]bool{"C": true}}
	l := newTestListener(nil, nil, followers, store)

	err := l.HandleEvent(context.Background(), events.PostPublished{PostID: "p1", AuthorID: "author"})
	if err == nil {
		t.Fatal("HandleEvent returned nil, want the per-recipient failure to be observable")
	}

	got := store.all()
	if len(got) != 2 {
		t.Fatalf("created %d notifications, want 2", len(got))
	}
	for _, n := range got {
		if n.RecipientID == "C" {
			t.Errorf("notification created for failing recipient C")
		}
	}
}

func TestPostPublishedWithoutFollowers(t *testing.T) {
	store := &stubStore{}
	l := newTestListener(nil, nil, nil, store)

	if err := l.HandleEvent(context.Background(), events.PostPublished{PostID: "p1", AuthorID: "author"}); err != nil {
		t.Fatalf("HandleEvent returned %v", err)
	}
	if got := store.all(); len(got) != 0 {
		t.Errorf("created %d notifications, want 0", len(got))
	}
}

// TestListenerThroughBus wires the listener onto a real bus and checks the
// full publish path end to end.
func TestListenerThroughBus(t *testing.T) {
	posts := &stubPosts{posts: map[string]*models.Post{
		"p1": {ID: "p1", CreatedBy: "post-author"},
	}}
	store := &stubStore{}
	l := newTestListener(nil, posts, nil, store)

	bus := events.NewBus()
	l.Register(bus)

	bus.Publish(events.PostLiked{PostID: "p1", LikerID: "liker"})
	bus.Wait()

	got := store.all()
	if len(got) != 1 {
		t.Fatalf("created %d notifications, want 1", len(got))
	}
	if got[0].RecipientID != "post-author" {
		t.Errorf("recipient = %s, want post-author", got[0].RecipientID)
	}
}
