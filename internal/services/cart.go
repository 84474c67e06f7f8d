package service

import (
	"context"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/cart"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/google/uuid"
)

// CartService fronts the per-session cart synchronizers. None of the cart
// operations return errors: persistence is best-effort by contract and every
// failure mode degrades to a usable in-memory cart.
type CartService struct {
	manager *cart.Manager
}

func NewCartService(manager *cart.Manager) *CartService {
	return &CartService{manager: manager}
}

func (s *CartService) View(ctx context.Context, sessionID string, userID uuid.UUID) models.CartView {
	return s.manager.Get(ctx, sessionID, userID).Snapshot()
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, userID uuid.UUID, req *models.AddCartItemRequest) models.CartView {

	sync := s.manager.Get(ctx, sessionID, userID)

	sync.AddToCart(ctx, models.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: req.Quantity,
		Variant:  req.Variant,
	})

	return sync.Snapshot()
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, userID uuid.UUID, req *models.UpdateCartQuantityRequest) models.CartView {

	sync := s.manager.Get(ctx, sessionID, userID)
	sync.UpdateQuantity(ctx, req.ID, req.Quantity, req.Variant)

	return sync.Snapshot()
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, userID uuid.UUID, req *models.RemoveCartItemRequest) models.CartView {

	sync := s.manager.Get(ctx, sessionID, userID)
	sync.RemoveFromCart(ctx, req.ID, req.Variant)

	return sync.Snapshot()
}

func (s *CartService) Clear(ctx context.Context, sessionID string, userID uuid.UUID) models.CartView {

	sync := s.manager.Get(ctx, sessionID, userID)
	sync.ClearCart(ctx)

	return sync.Snapshot()
}

func (s *CartService) OpenDrawer(ctx context.Context, sessionID string, userID uuid.UUID) models.CartView {

	sync := s.manager.Get(ctx, sessionID, userID)
	sync.OpenDrawer()

	return sync.Snapshot()
}

func (s *CartService) CloseDrawer(ctx context.Context, sessionID string, userID uuid.UUID) models.CartView {

	sync := s.manager.Get(ctx, sessionID, userID)
	sync.CloseDrawer()

	return sync.Snapshot()
}

// OnLogin fires the identity transition for the session, merging any guest
// cart into the user's remote cart.
func (s *CartService) OnLogin(ctx context.Context, sessionID string, userID uuid.UUID) {
	s.manager.Get(ctx, sessionID, uuid.Nil).SetIdentity(ctx, userID)
}
