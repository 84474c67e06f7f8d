package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/cache"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
)

type ArtworkService interface {
	CreateArtwork(ctx context.Context, req *models.CreateArtworkRequest) (*models.Artwork, error)
	GetArtworkByID(ctx context.Context, id int64) (*models.Artwork, error)
	UpdateArtwork(ctx context.Context, id int64, req *models.UpdateArtworkRequest) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, id int64) error
	ListArtworks(ctx context.Context, page, pageSize int) ([]*models.Artwork, int, error)
}

type artworkService struct {
	repo  repository.ArtworkRepository
	cache cache.Cache
}

func NewArtworkService(repo repository.ArtworkRepository, c cache.Cache) ArtworkService {
	return &artworkService{repo: repo, cache: c}
}

func (s *artworkService) CreateArtwork(ctx context.Context, req *models.CreateArtworkRequest) (*models.Artwork, error) {

	artwork := &models.Artwork{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Artist:        req.Artist,
		Medium:        req.Medium,
		Dimensions:    req.Dimensions,
		Year:          req.Year,
		Description:   req.Description,
		Price:         req.Price,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
		Status:        "available",
	}

	if err := s.repo.CreateArtwork(ctx, artwork); err != nil {
		return nil, errors.DatabaseError("Failed to create artwork").WithError(err)
	}

	return artwork, nil
}

func (s *artworkService) GetArtworkByID(ctx context.Context, id int64) (*models.Artwork, error) {

	key := cache.Key(cache.ArtworkKeyPrefix, strconv.FormatInt(id, 10))

	var cached models.Artwork

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Artwork cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	if found {
		return &cached, nil
	}

	artwork, err := s.repo.GetArtworkByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Artwork not found").WithError(err)
	}

	if err := s.cache.Set(ctx, key, artwork, 0); err != nil {
		slog.Warn("Artwork cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return artwork, nil
}

func (s *artworkService) UpdateArtwork(ctx context.Context, id int64, req *models.UpdateArtworkRequest) (*models.Artwork, error) {

	artwork, err := s.repo.GetArtworkByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Artwork not found").WithError(err)
	}

	if req.CategoryID != nil {
		artwork.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		artwork.Title = *req.Title
	}

	if req.Artist != nil {
		artwork.Artist = *req.Artist
	}

	if req.Medium != nil {
		artwork.Medium = *req.Medium
	}

	if req.Dimensions != nil {
		artwork.Dimensions = *req.Dimensions
	}

	if req.Year != nil {
		artwork.Year = *req.Year
	}

	if req.Description != nil {
		artwork.Description = *req.Description
	}

	if req.Price != nil {
		artwork.Price = *req.Price
	}

	if req.Image != nil {
		artwork.Image = *req.Image
	}

	if req.StockQuantity != nil {
		artwork.StockQuantity = *req.StockQuantity
	}

	if req.Status != nil {
		artwork.Status = *req.Status
	}

	if err := s.repo.UpdateArtwork(ctx, artwork); err != nil {
		return nil, errors.DatabaseError("Failed to update artwork").WithError(err)
	}

	key := cache.Key(cache.ArtworkKeyPrefix, strconv.FormatInt(id, 10))
	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Artwork cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return artwork, nil
}

func (s *artworkService) DeleteArtwork(ctx context.Context, id int64) error {

	if err := s.repo.DeleteArtwork(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete artwork").WithError(err)
	}

	key := cache.Key(cache.ArtworkKeyPrefix, strconv.FormatInt(id, 10))
	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("Artwork cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return nil
}

func (s *artworkService) ListArtworks(ctx context.Context, page, pageSize int) ([]*models.Artwork, int, error) {

	artworks, total, err := s.repo.ListArtworks(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch artworks").WithError(err)
	}

	return artworks, total, nil
}
