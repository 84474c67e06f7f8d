package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type BlogService interface {
	CreatePost(ctx context.Context, req *models.CreateBlogPostRequest) (*models.BlogPost, error)
	GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id int64, req *models.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id int64) error
	ListPosts(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*models.BlogPost, int, error)
}

type blogService struct {
	repo      repository.BlogRepository
	sanitizer *bluemonday.Policy
}

func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{
		repo: repo,
		// journal bodies come from a rich-text editor, so UGC policy, not StrictPolicy
		sanitizer: bluemonday.UGCPolicy(),
	}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func (s *blogService) CreatePost(ctx context.Context, req *models.CreateBlogPostRequest) (*models.BlogPost, error) {

	post := &models.BlogPost{
		Title:     req.Title,
		Slug:      slugify(req.Title),
		Author:    req.Author,
		Summary:   req.Summary,
		Body:      s.sanitizer.Sanitize(req.Body),
		Image:     req.Image,
		Published: req.Published,
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, errors.DatabaseError("Failed to create post").WithError(err)
	}

	return post, nil
}

func (s *blogService) GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {

	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Post not found").WithError(err)
	}

	return post, nil
}

func (s *blogService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {

	post, err := s.repo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFoundError("Post not found").WithError(err)
	}

	return post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, id int64, req *models.UpdateBlogPostRequest) (*models.BlogPost, error) {

	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Post not found").WithError(err)
	}

	if req.Title != nil {
		post.Title = *req.Title
		post.Slug = slugify(*req.Title)
	}

	if req.Author != nil {
		post.Author = *req.Author
	}

	if req.Summary != nil {
		post.Summary = *req.Summary
	}

	if req.Body != nil {
		post.Body = s.sanitizer.Sanitize(*req.Body)
	}

	if req.Image != nil {
		post.Image = *req.Image
	}

	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, errors.DatabaseError("Failed to update post").WithError(err)
	}

	return post, nil
}

func (s *blogService) DeletePost(ctx context.Context, id int64) error {

	if err := s.repo.DeletePost(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete post").WithError(err)
	}

	return nil
}

func (s *blogService) ListPosts(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*models.BlogPost, int, error) {

	posts, total, err := s.repo.ListPosts(ctx, publishedOnly, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch posts").WithError(err)
	}

	return posts, total, nil
}
