package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/anayakhandelwal/artisan-gallery-platform/internal/errors"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/repositories/mocks"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceTest() (service.OrderService, *mocks.OrderRepository, *mocks.CartRepository, *mocks.ArtworkRepository) {
	mockOrderRepo := new(mocks.OrderRepository)
	mockCartRepo := new(mocks.CartRepository)
	mockArtworkRepo := new(mocks.ArtworkRepository)

	return service.NewOrderService(mockOrderRepo, mockCartRepo, mockArtworkRepo), mockOrderRepo, mockCartRepo, mockArtworkRepo
}

func TestOrderService_CreateOrder(t *testing.T) {

	customerID := uuid.New()

	shippingReq := &models.CreateOrderRequest{
		ShippingAddress: models.Address{
			Street:     "12 Gallery Lane",
			City:       "Jaipur",
			State:      "RJ",
			PostalCode: "302001",
			Country:    "IN",
		},
	}

	t.Run("Success - Order Built From Cart, Stock Decremented, Cart Cleared", func(t *testing.T) {
		// Arrange
		orderService, mockOrderRepo, mockCartRepo, mockArtworkRepo := newOrderServiceTest()
		ctx := t.Context()

		cart := []models.CartItem{
			{ID: "7", Name: "Dusk Over the Ghats", Price: models.NewPrice(250), Quantity: 2},
			{ID: "9", Name: "Terracotta Study", Price: models.NewPrice(40), Quantity: 1, Variant: "framed"},
		}

		mockCartRepo.On("FetchCart", ctx, customerID).Return(cart, nil).Once()
		mockArtworkRepo.On("GetArtworkByID", ctx, int64(7)).Return(&models.Artwork{ID: 7, StockQuantity: 5}, nil).Twice()
		mockArtworkRepo.On("GetArtworkByID", ctx, int64(9)).Return(&models.Artwork{ID: 9, StockQuantity: 1}, nil).Twice()
		mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		mockArtworkRepo.On("UpdateArtwork", ctx, mock.AnythingOfType("*models.Artwork")).Return(nil).Twice()
		mockCartRepo.On("ReplaceCart", ctx, customerID, []models.CartItem(nil)).Return(nil).Once()

		// Act
		order, err := orderService.CreateOrder(ctx, customerID, shippingReq)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, customerID, order.CustomerID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
		assert.InDelta(t, 540.0, order.TotalAmount, 0.001)
		require.Len(t, order.Items, 2)
		assert.Equal(t, models.ProductID("7"), order.Items[0].ProductID)
		assert.Equal(t, "framed", order.Items[1].Variant)

		mockOrderRepo.AssertExpectations(t)
		mockCartRepo.AssertExpectations(t)
		mockArtworkRepo.AssertExpectations(t)
	})

	t.Run("Success - Non-Catalog Line Skips The Stock Check", func(t *testing.T) {
		// Arrange
		orderService, mockOrderRepo, mockCartRepo, mockArtworkRepo := newOrderServiceTest()
		ctx := t.Context()

		cart := []models.CartItem{
			{ID: "gift-card-50", Name: "Gift Card", Price: models.NewPrice(50), Quantity: 1},
		}

		mockCartRepo.On("FetchCart", ctx, customerID).Return(cart, nil).Once()
		mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		mockCartRepo.On("ReplaceCart", ctx, customerID, []models.CartItem(nil)).Return(nil).Once()

		// Act
		order, err := orderService.CreateOrder(ctx, customerID, shippingReq)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 50.0, order.TotalAmount, 0.001)
		mockArtworkRepo.AssertNotCalled(t, "GetArtworkByID")
		mockOrderRepo.AssertExpectations(t)
		mockCartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		orderService, mockOrderRepo, mockCartRepo, _ := newOrderServiceTest()
		ctx := t.Context()

		mockCartRepo.On("FetchCart", ctx, customerID).Return([]models.CartItem{}, nil).Once()

		// Act
		order, err := orderService.CreateOrder(ctx, customerID, shippingReq)

		// Assert
		assert.Nil(t, order)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockOrderRepo.AssertNotCalled(t, "CreateOrder")
		mockCartRepo.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		orderService, mockOrderRepo, mockCartRepo, mockArtworkRepo := newOrderServiceTest()
		ctx := t.Context()

		cart := []models.CartItem{
			{ID: "7", Name: "Dusk Over the Ghats", Price: models.NewPrice(250), Quantity: 3},
		}

		mockCartRepo.On("FetchCart", ctx, customerID).Return(cart, nil).Once()
		mockArtworkRepo.On("GetArtworkByID", ctx, int64(7)).Return(&models.Artwork{ID: 7, StockQuantity: 2}, nil).Once()

		// Act
		order, err := orderService.CreateOrder(ctx, customerID, shippingReq)

		// Assert
		assert.Nil(t, order)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockOrderRepo.AssertNotCalled(t, "CreateOrder")
		mockArtworkRepo.AssertExpectations(t)
	})
}

func TestOrderService_ListOrdersByCustomer(t *testing.T) {

	t.Run("Success - Pagination Is Clamped", func(t *testing.T) {
		// Arrange
		orderService, mockOrderRepo, _, _ := newOrderServiceTest()
		ctx := t.Context()
		customerID := uuid.New()

		mockOrderRepo.On("ListOrdersByCustomer", ctx, customerID, 1, 10).Return([]models.Order{{ID: uuid.New()}}, 1, nil).Once()

		// Act
		orders, err := orderService.ListOrdersByCustomer(ctx, customerID, 0, 50)

		// Assert
		require.NoError(t, err)
		assert.Len(t, orders, 1)
		mockOrderRepo.AssertExpectations(t)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {

	t.Run("Failure - Order Not Found", func(t *testing.T) {
		// Arrange
		orderService, mockOrderRepo, _, _ := newOrderServiceTest()
		ctx := t.Context()
		orderID := uuid.New()

		mockOrderRepo.On("GetOrderByID", ctx, orderID).Return(nil, errors.New("no rows")).Once()

		// Act
		order, err := orderService.UpdateOrderStatus(ctx, orderID, models.OrderStatusConfirmed)

		// Assert
		assert.Nil(t, order)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockOrderRepo.AssertNotCalled(t, "UpdateOrderStatus")
		mockOrderRepo.AssertExpectations(t)
	})
}
