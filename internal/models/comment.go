package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a threaded comment on a post. ParentID is empty for root
// comments. Deletion is logical (DeletedAt) so existing replies keep their
// place in the thread.
type Comment struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	PostID    string         `json:"post_id" gorm:"index"`
	ParentID  string         `json:"parent_id,omitempty" gorm:"index"`
	UserID    string         `json:"user_id" gorm:"index"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	ParentID string `json:"parent_id" validate:"omitempty,uuid"`
}

// CommentNode is a comment with its direct replies attached.
type CommentNode struct {
	Comment
	Children []*CommentNode `json:"children"`
}

// BuildCommentTree reconstructs the reply forest from a flat list of
// comments for one post. Input order is preserved among siblings, so
// passing a newest-first list yields newest-first threads.
//
// A comment whose parent is not present in the list (the parent was
// soft-deleted before its replies) is promoted to a root rather than
// dropped.
func BuildCommentTree(flat []Comment) []*CommentNode {
	nodes := make(map[string]*CommentNode, len(flat))
	ordered := make([]*CommentNode, 0, len(flat))
	for _, c := range flat {
		n := &CommentNode{Comment: c, Children: []*CommentNode{}}
		nodes[c.ID] = n
		ordered = append(ordered, n)
	}

	roots := make([]*CommentNode, 0, len(flat))
	for _, n := range ordered {
		if n.ParentID != "" {
			if parent, ok := nodes[n.ParentID]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}
