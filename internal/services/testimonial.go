package service

import (
	"context"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
)

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, req *models.CreateTestimonialRequest) (*models.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int64, req *models.UpdateTestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error
	ListTestimonials(ctx context.Context, featuredOnly bool) ([]*models.Testimonial, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, req *models.CreateTestimonialRequest) (*models.Testimonial, error) {

	testimonial := &models.Testimonial{
		Name:     req.Name,
		Location: req.Location,
		Quote:    req.Quote,
		Rating:   req.Rating,
		Featured: req.Featured,
	}

	if err := s.repo.CreateTestimonial(ctx, testimonial); err != nil {
		return nil, errors.DatabaseError("Failed to create testimonial").WithError(err)
	}

	return testimonial, nil
}

func (s *testimonialService) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {

	testimonial, err := s.repo.GetTestimonialByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Testimonial not found").WithError(err)
	}

	return testimonial, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id int64, req *models.UpdateTestimonialRequest) (*models.Testimonial, error) {

	testimonial, err := s.repo.GetTestimonialByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Testimonial not found").WithError(err)
	}

	if req.Name != nil {
		testimonial.Name = *req.Name
	}

	if req.Location != nil {
		testimonial.Location = *req.Location
	}

	if req.Quote != nil {
		testimonial.Quote = *req.Quote
	}

	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}

	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}

	if err := s.repo.UpdateTestimonial(ctx, testimonial); err != nil {
		return nil, errors.DatabaseError("Failed to update testimonial").WithError(err)
	}

	return testimonial, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id int64) error {

	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete testimonial").WithError(err)
	}

	return nil
}

func (s *testimonialService) ListTestimonials(ctx context.Context, featuredOnly bool) ([]*models.Testimonial, error) {

	testimonials, err := s.repo.ListTestimonials(ctx, featuredOnly)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch testimonials").WithError(err)
	}

	return testimonials, nil
}
