package handlers

import (
	"log/slog"
	"net/http"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/middleware"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type BlogHandler struct {
	blogService service.BlogService
	validator   *validator.Validate
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService, validator: validator.New()}
}

func (h *BlogHandler) CreatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateBlogPostRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		post, err := h.blogService.CreatePost(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create blog post", slog.String("title", req.Title), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Blog post created", slog.Int64("postId", post.ID), slog.String("slug", post.Slug))
		response.Success(w, http.StatusCreated, post)
	}
}

func (h *BlogHandler) GetPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, errors.BadRequestError("Post slug is required"))
			return
		}

		post, err := h.blogService.GetPostBySlug(r.Context(), slug)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, post)
	}
}

func (h *BlogHandler) UpdatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req models.UpdateBlogPostRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		post, err := h.blogService.UpdatePost(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update blog post", slog.Int64("postId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, post)
	}
}

func (h *BlogHandler) DeletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := h.blogService.DeletePost(r.Context(), id); err != nil {
			logger.Error("Failed to delete blog post", slog.Int64("postId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func (h *BlogHandler) ListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := pagination(r)

		publishedOnly := r.URL.Query().Get("all") != "true"

		posts, total, err := h.blogService.ListPosts(r.Context(), publishedOnly, page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     posts,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
