package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
)

type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error
	GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id int64) error
	ListTestimonials(ctx context.Context, featuredOnly bool) ([]*models.Testimonial, error)
}

type testimonialRepository struct {
	DB *sql.DB
}

func NewTestimonialRepo(db *sql.DB) TestimonialRepository {
	return &testimonialRepository{DB: db}
}

func (r *testimonialRepository) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO testimonials (name, location, quote, rating, featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		testimonial.Name, testimonial.Location, testimonial.Quote, testimonial.Rating, testimonial.Featured,
	).Scan(&testimonial.ID, &testimonial.CreatedAt, &testimonial.UpdatedAt)
}

func (r *testimonialRepository) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	testimonial := &models.Testimonial{}

	query := `
		SELECT id, name, location, quote, rating, featured, created_at, updated_at
		FROM testimonials
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&testimonial.ID, &testimonial.Name, &testimonial.Location, &testimonial.Quote,
		&testimonial.Rating, &testimonial.Featured, &testimonial.CreatedAt, &testimonial.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return testimonial, nil
}

func (r *testimonialRepository) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE testimonials
		SET name = $1, location = $2, quote = $3, rating = $4, featured = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		testimonial.Name, testimonial.Location, testimonial.Quote, testimonial.Rating,
		testimonial.Featured, testimonial.ID,
	).Scan(&testimonial.UpdatedAt)
}

func (r *testimonialRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete the testimonial: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *testimonialRepository) ListTestimonials(ctx context.Context, featuredOnly bool) ([]*models.Testimonial, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, location, quote, rating, featured, created_at, updated_at
		FROM testimonials
		WHERE ($1 = FALSE OR featured = TRUE)
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, featuredOnly)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var testimonials []*models.Testimonial

	for rows.Next() {
		testimonial := &models.Testimonial{}

		err := rows.Scan(
			&testimonial.ID, &testimonial.Name, &testimonial.Location, &testimonial.Quote,
			&testimonial.Rating, &testimonial.Featured, &testimonial.CreatedAt, &testimonial.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		testimonials = append(testimonials, testimonial)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return testimonials, nil
}
