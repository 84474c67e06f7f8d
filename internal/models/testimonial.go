package models

import "time"

type Testimonial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Location string `json:"location,omitempty" validate:"omitempty,max=120"`
	Quote    string `json:"quote" validate:"required,min=10,max=2000"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Featured bool   `json:"featured"`
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=120"`
	Quote    *string `json:"quote,omitempty" validate:"omitempty,min=10,max=2000"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Featured *bool   `json:"featured,omitempty"`
}
