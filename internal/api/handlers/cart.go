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
	"github.com/google/uuid"
)

// CartHandler serves both guests and logged-in users: the session cookie
// identifies the cart, the optional bearer token decides its scope.
type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// identity pulls the session id and optional user id off the request.
func identity(r *http.Request) (string, uuid.UUID) {

	sessionID := middleware.SessionFromContext(r.Context())

	userID := uuid.Nil
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		userID = claims.UserID
	}

	return sessionID, userID
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		view := h.cartService.View(r.Context(), sessionID, userID)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view := h.cartService.AddItem(r.Context(), sessionID, userID, &req)

		logger.Info("Item added to cart",
			slog.String("productId", string(req.ID)),
			slog.String("variant", req.Variant),
			slog.Int("cartCount", view.Count))
		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		var req models.UpdateCartQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view := h.cartService.UpdateQuantity(r.Context(), sessionID, userID, &req)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		var req models.RemoveCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view := h.cartService.RemoveItem(r.Context(), sessionID, userID, &req)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		view := h.cartService.Clear(r.Context(), sessionID, userID)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) OpenDrawer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		view := h.cartService.OpenDrawer(r.Context(), sessionID, userID)

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) CloseDrawer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, userID := identity(r)
		if sessionID == "" {
			response.Error(w, errors.BadRequestError("Session is required"))
			return
		}

		view := h.cartService.CloseDrawer(r.Context(), sessionID, userID)

		response.Success(w, http.StatusOK, view)
	}
}
