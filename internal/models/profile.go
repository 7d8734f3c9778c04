package models

import "time"

// Profile is the site owner's landing-page content. A single row with ID 1.
type Profile struct {
	ID             int       `json:"id" gorm:"primaryKey"`
	Role           string    `json:"role"`
	TitlePrefix    string    `json:"title_prefix"`
	TitleHighlight string    `json:"title_highlight"`
	TitleSuffix    string    `json:"title_suffix"`
	Intro          string    `json:"intro"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateProfileRequest defines the request body for updating the profile
type UpdateProfileRequest struct {
	Role           string `json:"role" validate:"required,max=100"`
	TitlePrefix    string `json:"title_prefix" validate:"max=100"`
	TitleHighlight string `json:"title_highlight" validate:"max=100"`
	TitleSuffix    string `json:"title_suffix" validate:"max=100"`
	Intro          string `json:"intro" validate:"required,max=2000"`
}
