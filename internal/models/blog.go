package models

import "time"

type BlogPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Author    string    `json:"author"`
	Summary   string    `json:"summary,omitempty"`
	Body      string    `json:"body"`
	Image     string    `json:"image,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBlogPostRequest struct {
	Title     string `json:"title" validate:"required,min=3,max=200"`
	Author    string `json:"author" validate:"required"`
	Summary   string `json:"summary,omitempty" validate:"omitempty,max=500"`
	Body      string `json:"body" validate:"required"`
	Image     string `json:"image,omitempty"`
	Published bool   `json:"published"`
}

type UpdateBlogPostRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Author    *string `json:"author,omitempty"`
	Summary   *string `json:"summary,omitempty" validate:"omitempty,max=500"`
	Body      *string `json:"body,omitempty"`
	Image     *string `json:"image,omitempty"`
	Published *bool   `json:"published,omitempty"`
}
