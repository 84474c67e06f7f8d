package handlers

import (
	"log/slog"
	"net/http"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/middleware"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
	validator          *validator.Validate
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, validator: validator.New()}
}

func (h *TestimonialHandler) CreateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateTestimonialRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		testimonial, err := h.testimonialService.CreateTestimonial(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create testimonial", slog.String("name", req.Name), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, testimonial)
	}
}

func (h *TestimonialHandler) UpdateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req models.UpdateTestimonialRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		testimonial, err := h.testimonialService.UpdateTestimonial(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update testimonial", slog.Int64("testimonialId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, testimonial)
	}
}

func (h *TestimonialHandler) DeleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := h.testimonialService.DeleteTestimonial(r.Context(), id); err != nil {
			logger.Error("Failed to delete testimonial", slog.Int64("testimonialId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func (h *TestimonialHandler) ListTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		featuredOnly := r.URL.Query().Get("featured") == "true"

		testimonials, err := h.testimonialService.ListTestimonials(r.Context(), featuredOnly)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, testimonials)
	}
}
