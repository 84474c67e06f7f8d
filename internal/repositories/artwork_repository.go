package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
)

type ArtworkRepository interface {
	CreateArtwork(ctx context.Context, artwork *models.Artwork) error
	GetArtworkByID(ctx context.Context, id int64) (*models.Artwork, error)
	UpdateArtwork(ctx context.Context, artwork *models.Artwork) error
	DeleteArtwork(ctx context.Context, id int64) error
	ListArtworks(ctx context.Context, page, size int) ([]*models.Artwork, int, error)
}

type artworkRepository struct {
	DB *sql.DB
}

func NewArtworkRepo(db *sql.DB) ArtworkRepository {
	return &artworkRepository{DB: db}
}

func (r *artworkRepository) CreateArtwork(ctx context.Context, artwork *models.Artwork) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO artworks (category_id, title, artist, medium, dimensions, year, description, price, image, stock_quantity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		artwork.CategoryID, artwork.Title, artwork.Artist, artwork.Medium, artwork.Dimensions,
		artwork.Year, artwork.Description, artwork.Price, artwork.Image, artwork.StockQuantity, artwork.Status,
	).Scan(&artwork.ID, &artwork.CreatedAt, &artwork.UpdatedAt)
}

func (r *artworkRepository) GetArtworkByID(ctx context.Context, id int64) (*models.Artwork, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	artwork := &models.Artwork{}

	query := `
		SELECT a.id, a.category_id, a.title, a.artist, a.medium, a.dimensions, a.year,
		       a.description, a.price, a.image, a.stock_quantity, a.status, a.created_at, a.updated_at,
		       c.id, c.name, c.description
		FROM artworks a
		LEFT JOIN categories c ON a.category_id = c.id
		WHERE a.id = $1
	`

	var category models.Category

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&artwork.ID, &artwork.CategoryID, &artwork.Title, &artwork.Artist, &artwork.Medium,
		&artwork.Dimensions, &artwork.Year, &artwork.Description, &artwork.Price, &artwork.Image,
		&artwork.StockQuantity, &artwork.Status, &artwork.CreatedAt, &artwork.UpdatedAt,
		&category.ID, &category.Name, &category.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	artwork.Category = &category

	return artwork, nil
}

func (r *artworkRepository) UpdateArtwork(ctx context.Context, artwork *models.Artwork) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE artworks
		SET category_id = $1, title = $2, artist = $3, medium = $4, dimensions = $5, year = $6,
		    description = $7, price = $8, image = $9, stock_quantity = $10, status = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		artwork.CategoryID, artwork.Title, artwork.Artist, artwork.Medium, artwork.Dimensions,
		artwork.Year, artwork.Description, artwork.Price, artwork.Image, artwork.StockQuantity,
		artwork.Status, artwork.ID,
	).Scan(&artwork.UpdatedAt)
}

func (r *artworkRepository) DeleteArtwork(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete the artwork: %w", err)
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

func (r *artworkRepository) ListArtworks(ctx context.Context, page, size int) ([]*models.Artwork, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM artworks`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT a.id, a.category_id, a.title, a.artist, a.medium, a.dimensions, a.year,
		       a.description, a.price, a.image, a.stock_quantity, a.status, a.created_at, a.updated_at,
		       c.id, c.name, c.description
		FROM artworks a
		LEFT JOIN categories c ON a.category_id = c.id
		ORDER BY a.id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var artworks []*models.Artwork

	for rows.Next() {
		artwork := &models.Artwork{}
		category := &models.Category{}

		err := rows.Scan(
			&artwork.ID, &artwork.CategoryID, &artwork.Title, &artwork.Artist, &artwork.Medium,
			&artwork.Dimensions, &artwork.Year, &artwork.Description, &artwork.Price, &artwork.Image,
			&artwork.StockQuantity, &artwork.Status, &artwork.CreatedAt, &artwork.UpdatedAt,
			&category.ID, &category.Name, &category.Description,
		)
		if err != nil {
			return nil, 0, err
		}

		artwork.Category = category
		artworks = append(artworks, artwork)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return artworks, total, nil
}
