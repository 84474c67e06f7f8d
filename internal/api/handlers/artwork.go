package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/middleware"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ArtworkHandler struct {
	artworkService service.ArtworkService
	validator      *validator.Validate
}

func NewArtworkHandler(artworkService service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworkService: artworkService, validator: validator.New()}
}

// pathID parses the numeric {id} path segment, writing the error itself.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.Error(w, errors.BadRequestError("Invalid ID"))
		return 0, false
	}

	return id, true
}

// pagination parses page/pageSize query parameters with the catalog defaults.
func pagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	return page, pageSize
}

func (h *ArtworkHandler) CreateArtwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateArtworkRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		artwork, err := h.artworkService.CreateArtwork(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create artwork", slog.String("title", req.Title), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Artwork created", slog.Int64("artworkId", artwork.ID))
		response.Success(w, http.StatusCreated, artwork)
	}
}

func (h *ArtworkHandler) GetArtwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		artwork, err := h.artworkService.GetArtworkByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, artwork)
	}
}

func (h *ArtworkHandler) UpdateArtwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req models.UpdateArtworkRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		artwork, err := h.artworkService.UpdateArtwork(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update artwork", slog.Int64("artworkId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, artwork)
	}
}

func (h *ArtworkHandler) DeleteArtwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := h.artworkService.DeleteArtwork(r.Context(), id); err != nil {
			logger.Error("Failed to delete artwork", slog.Int64("artworkId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Artwork deleted", slog.Int64("artworkId", id))
		response.Success(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func (h *ArtworkHandler) ListArtworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := pagination(r)

		artworks, total, err := h.artworkService.ListArtworks(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     artworks,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
