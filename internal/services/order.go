package service

import (
	"context"
	"strconv"
	"time"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	repository "github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	artworkRepo repository.ArtworkRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, artworkRepo repository.ArtworkRepository) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo, artworkRepo: artworkRepo}
}

// CreateOrder turns the customer's stored cart into an order. The cart is the
// source of truth for the order lines; the request only supplies the shipping
// address. On success the stored cart is emptied.
func (s *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {

	items, err := s.cartRepo.FetchCart(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(items) == 0 {
		return nil, errors.BadRequestError("Cannot create order with empty cart")
	}

	// Cart lines whose id resolves to a catalog artwork are checked against
	// stock; lines with non-catalog ids pass through as-is.
	for _, item := range items {
		artworkID, ok := catalogID(item.ID)
		if !ok {
			continue
		}

		artwork, err := s.artworkRepo.GetArtworkByID(ctx, artworkID)
		if err != nil {
			return nil, errors.NotFoundError("Artwork not found: " + string(item.ID)).WithError(err)
		}

		if artwork.StockQuantity < item.Quantity {
			return nil, errors.BadRequestError("Insufficient stock for artwork: " + string(item.ID))
		}
	}

	var grossTotal float64

	for _, item := range items {
		grossTotal += item.Price.Amount() * float64(item.Quantity)
	}

	order := &models.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Status:          models.OrderStatusPending,
		TotalAmount:     grossTotal,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: &req.ShippingAddress,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	var orderItems []models.OrderItem

	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ID,
			Name:      item.Name,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.Price.Amount(),
			CreatedAt: time.Now(),
		})
	}

	order.Items = orderItems

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	for _, item := range items {
		artworkID, ok := catalogID(item.ID)
		if !ok {
			continue
		}

		artwork, err := s.artworkRepo.GetArtworkByID(ctx, artworkID)
		if err != nil {
			continue
		}

		artwork.StockQuantity -= item.Quantity

		if err := s.artworkRepo.UpdateArtwork(ctx, artwork); err != nil {
			return nil, errors.DatabaseError("Failed to update inventory").WithError(err)
		}
	}

	if err := s.cartRepo.ReplaceCart(ctx, customerID, nil); err != nil {
		return nil, errors.DatabaseError("Failed to clear cart after checkout").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 10 {
		size = 10
	}

	orders, _, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	if _, err := s.orderRepo.GetOrderByID(ctx, id); err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return s.orderRepo.GetOrderByID(ctx, id)
}

func catalogID(id models.ProductID) (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
