package models

import "time"

// Project is a portfolio entry. Tags are stored as a JSON-encoded string
// array, mirroring how posts store theirs.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	AuthorID    string    `json:"author_id" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        string    `json:"-"`
	Image       string    `json:"image"`
	Link        string    `json:"link"`
	Date        int64     `json:"date" gorm:"index"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest defines the request body for creating a project.
// Tags is a comma-separated list.
type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Tags        string `json:"tags" validate:"max=300"`
	Image       string `json:"image" validate:"omitempty,url"`
	Link        string `json:"link" validate:"omitempty,url"`
}

// ProjectResponse is a Project with its tags decoded for the client.
type ProjectResponse struct {
	Project
	TagList []string `json:"tags"`
}
