// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) FetchCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)

	items, _ := args.Get(0).([]models.CartItem)

	return items, args.Error(1)
}

func (m *CartRepository) ReplaceCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) error {
	args := m.Called(ctx, userID, items)

	return args.Error(0)
}

func (m *CartRepository) MergeCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) ([]models.CartItem, error) {
	args := m.Called(ctx, userID, items)

	merged, _ := args.Get(0).([]models.CartItem)

	return merged, args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)

	user, _ := args.Get(0).(*models.User)

	return user, args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)

	user, _ := args.Get(0).(*models.User)

	return user, args.Error(1)
}

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

type ArtworkRepository struct {
	mock.Mock
}

func (m *ArtworkRepository) CreateArtwork(ctx context.Context, artwork *models.Artwork) error {
	args := m.Called(ctx, artwork)

	return args.Error(0)
}

func (m *ArtworkRepository) GetArtworkByID(ctx context.Context, id int64) (*models.Artwork, error) {
	args := m.Called(ctx, id)

	artwork, _ := args.Get(0).(*models.Artwork)

	return artwork, args.Error(1)
}

func (m *ArtworkRepository) UpdateArtwork(ctx context.Context, artwork *models.Artwork) error {
	args := m.Called(ctx, artwork)

	return args.Error(0)
}

func (m *ArtworkRepository) DeleteArtwork(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ArtworkRepository) ListArtworks(ctx context.Context, page, size int) ([]*models.Artwork, int, error) {
	args := m.Called(ctx, page, size)

	artworks, _ := args.Get(0).([]*models.Artwork)

	return artworks, args.Int(1), args.Error(2)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)

	order, _ := args.Get(0).(*models.Order)

	return order, args.Error(1)
}

func (m *OrderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, customerID, page, size)

	orders, _ := args.Get(0).([]models.Order)

	return orders, args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *OrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paymentIntentID string) error {
	args := m.Called(ctx, id, status, paymentIntentID)

	return args.Error(0)
}

func (m *OrderRepository) UpdatePaymentStatusByIntent(ctx context.Context, paymentIntentID string, status models.PaymentStatus) error {
	args := m.Called(ctx, paymentIntentID, status)

	return args.Error(0)
}

type BlogRepository struct {
	mock.Mock
}

func (m *BlogRepository) CreatePost(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *BlogRepository) GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	args := m.Called(ctx, id)

	post, _ := args.Get(0).(*models.BlogPost)

	return post, args.Error(1)
}

func (m *BlogRepository) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)

	post, _ := args.Get(0).(*models.BlogPost)

	return post, args.Error(1)
}

func (m *BlogRepository) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *BlogRepository) DeletePost(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *BlogRepository) ListPosts(ctx context.Context, publishedOnly bool, page, size int) ([]*models.BlogPost, int, error) {
	args := m.Called(ctx, publishedOnly, page, size)

	posts, _ := args.Get(0).([]*models.BlogPost)

	return posts, args.Int(1), args.Error(2)
}

type TestimonialRepository struct {
	mock.Mock
}

func (m *TestimonialRepository) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	args := m.Called(ctx, testimonial)

	return args.Error(0)
}

func (m *TestimonialRepository) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	args := m.Called(ctx, id)

	testimonial, _ := args.Get(0).(*models.Testimonial)

	return testimonial, args.Error(1)
}

func (m *TestimonialRepository) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	args := m.Called(ctx, testimonial)

	return args.Error(0)
}

func (m *TestimonialRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *TestimonialRepository) ListTestimonials(ctx context.Context, featuredOnly bool) ([]*models.Testimonial, error) {
	args := m.Called(ctx, featuredOnly)

	testimonials, _ := args.Get(0).([]*models.Testimonial)

	return testimonials, args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *NotificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errMsg string, sentAt *time.Time) error {
	args := m.Called(ctx, id, status, errMsg, sentAt)

	return args.Error(0)
}

func (m *NotificationRepository) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {
	args := m.Called(ctx, page, size)

	notifications, _ := args.Get(0).([]*models.Notification)

	return notifications, args.Int(1), args.Error(2)
}
