package models

import "time"

// Post is a blog post. Content is markdown; Tags are stored as a
// JSON-encoded string array.
type Post struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	Tags       string    `json:"-"`
	CoverImage string    `json:"cover_image"`
	ReadTime   string    `json:"read_time"`
	CreatedBy  string    `json:"created_by" gorm:"index"`
	UpdatedBy  string    `json:"updated_by"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for publishing a post.
// Tags is a comma-separated list.
type CreatePostRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=160"`
	Excerpt    string `json:"excerpt" validate:"required,min=1,max=500"`
	Content    string `json:"content" validate:"required,min=1"`
	Tags       string `json:"tags" validate:"max=300"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
}

// PostWithAuthor is a Post joined with the author's username and decoded tags.
type PostWithAuthor struct {
	Post
	AuthorName string   `json:"author_name"`
	TagList    []string `json:"tags" gorm:"-"`
}
