package models

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
}

// Artwork is a catalog entry: a painting or an artefact.
type Artwork struct {
	ID            int64     `json:"id"`
	CategoryID    int64     `json:"category_id"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	Medium        string    `json:"medium,omitempty"`
	Dimensions    string    `json:"dimensions,omitempty"`
	Year          int       `json:"year,omitempty"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Image         string    `json:"image"`
	StockQuantity int       `json:"stock_quantity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Category      *Category `json:"category,omitempty"`
}

type CreateArtworkRequest struct {
	CategoryID    int64   `json:"category_id" validate:"required"`
	Title         string  `json:"title" validate:"required,min=2,max=200"`
	Artist        string  `json:"artist" validate:"required,min=2,max=120"`
	Medium        string  `json:"medium,omitempty"`
	Dimensions    string  `json:"dimensions,omitempty"`
	Year          int     `json:"year,omitempty" validate:"omitempty,gte=0"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Image         string  `json:"image,omitempty"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

type UpdateArtworkRequest struct {
	CategoryID    *int64   `json:"category_id,omitempty"`
	Title         *string  `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Artist        *string  `json:"artist,omitempty" validate:"omitempty,min=2,max=120"`
	Medium        *string  `json:"medium,omitempty"`
	Dimensions    *string  `json:"dimensions,omitempty"`
	Year          *int     `json:"year,omitempty" validate:"omitempty,gte=0"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image         *string  `json:"image,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=available reserved sold archived"`
}
