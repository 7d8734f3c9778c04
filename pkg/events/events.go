package events

// Kind identifies a category of domain event on the bus.
type Kind string

const (
	KindCommentCreated Kind = "comment.created"
	KindPostLiked      Kind = "post.liked"
	KindUserFollowed   Kind = "user.followed"
	KindPostPublished  Kind = "post.published"
)

// Kinds lists every event kind a listener may subscribe to.
func Kinds() []Kind {
	return []Kind{KindCommentCreated, KindPostLiked, KindUserFollowed, KindPostPublished}
}

// Event is the closed set of domain events published by the interaction
// handlers. Every variant carries the acting user's ID and enough reference
// IDs for listeners to resolve recipients without re-querying the trigger.
type Event interface {
	Kind() Kind
	isEvent()
}

// CommentCreated is published after a comment row has been committed.
// ParentID is empty for root comments.
type CommentCreated struct {
	CommentID string
	PostID    string
	AuthorID  string
	ParentID  string
	Content   string
}

func (CommentCreated) Kind() Kind { return KindCommentCreated }
func (CommentCreated) isEvent()   {}

// PostLiked is published when a like toggles on (never on unlike).
type PostLiked struct {
	PostID  string
	LikerID string
}

func (PostLiked) Kind() Kind { return KindPostLiked }
func (PostLiked) isEvent()   {}

// UserFollowed is published when a new follow edge is created.
// A duplicate follow attempt does not publish.
type UserFollowed struct {
	FollowerID string
	TargetID   string
}

func (UserFollowed) Kind() Kind { return KindUserFollowed }
func (UserFollowed) isEvent()   {}

// PostPublished is published after a post has been committed.
type PostPublished struct {
	PostID   string
	AuthorID string
}

func (PostPublished) Kind() Kind { return KindPostPublished }
func (PostPublished) isEvent()   {}
