package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/utils"
)

type BlogRepository interface {
	CreatePost(ctx context.Context, post *models.BlogPost) error
	GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, post *models.BlogPost) error
	DeletePost(ctx context.Context, id int64) error
	ListPosts(ctx context.Context, publishedOnly bool, page, size int) ([]*models.BlogPost, int, error)
}

type blogRepository struct {
	DB *sql.DB
}

func NewBlogRepo(db *sql.DB) BlogRepository {
	return &blogRepository{DB: db}
}

func (r *blogRepository) CreatePost(ctx context.Context, post *models.BlogPost) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO blog_posts (title, slug, author, summary, body, image, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		post.Title, post.Slug, post.Author, post.Summary, post.Body, post.Image, post.Published,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *blogRepository) GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	post := &models.BlogPost{}

	query := `
		SELECT id, title, slug, author, summary, body, image, published, created_at, updated_at
		FROM blog_posts
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Author, &post.Summary,
		&post.Body, &post.Image, &post.Published, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return post, nil
}

func (r *blogRepository) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	post := &models.BlogPost{}

	query := `
		SELECT id, title, slug, author, summary, body, image, published, created_at, updated_at
		FROM blog_posts
		WHERE slug = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, slug).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Author, &post.Summary,
		&post.Body, &post.Image, &post.Published, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return post, nil
}

func (r *blogRepository) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, author = $3, summary = $4, body = $5, image = $6, published = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		post.Title, post.Slug, post.Author, post.Summary, post.Body, post.Image, post.Published, post.ID,
	).Scan(&post.UpdatedAt)
}

func (r *blogRepository) DeletePost(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete the post: %w", err)
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

func (r *blogRepository) ListPosts(ctx context.Context, publishedOnly bool, page, size int) ([]*models.BlogPost, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM blog_posts WHERE ($1 = FALSE OR published = TRUE)`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, publishedOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, title, slug, author, summary, body, image, published, created_at, updated_at
		FROM blog_posts
		WHERE ($1 = FALSE OR published = TRUE)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, publishedOnly, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var posts []*models.BlogPost

	for rows.Next() {
		post := &models.BlogPost{}

		err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Author, &post.Summary,
			&post.Body, &post.Image, &post.Published, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}
