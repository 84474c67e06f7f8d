package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/handlers"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/api/middleware"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/cart"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	service "github.com/anayakhandelwal/artisan-gallery-platform/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The cart handler is exercised against a real manager with in-memory
// stores; the interesting behavior lives in the session/claims plumbing
// and the envelope, not in store round-trips.
type memGuestStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func (s *memGuestStore) Read(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entries[sessionID], nil
}

func (s *memGuestStore) Write(_ context.Context, sessionID, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = payload

	return nil
}

func (s *memGuestStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)

	return nil
}

type memRemoteStore struct {
	mu     sync.Mutex
	stored map[uuid.UUID][]models.CartItem
}

func (s *memRemoteStore) FetchCart(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CartItem(nil), s.stored[userID]...), nil
}

func (s *memRemoteStore) ReplaceCart(_ context.Context, userID uuid.UUID, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stored[userID] = append([]models.CartItem(nil), items...)

	return nil
}

func (s *memRemoteStore) MergeCart(_ context.Context, userID uuid.UUID, items []models.CartItem) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := append([]models.CartItem(nil), s.stored[userID]...)

	for _, item := range items {
		found := false

		for i := range merged {
			if merged[i].Key() == item.Key() {
				merged[i].Quantity += item.Quantity
				found = true

				break
			}
		}

		if !found {
			merged = append(merged, item)
		}
	}

	s.stored[userID] = merged

	return append([]models.CartItem(nil), merged...), nil
}

func setupCartHandlerTest(t *testing.T) *handlers.CartHandler {
	t.Helper()

	guest := &memGuestStore{entries: make(map[string]string)}
	remote := &memRemoteStore{stored: make(map[uuid.UUID][]models.CartItem)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := cart.NewManager(guest, remote, logger)

	return handlers.NewCartHandler(service.NewCartService(manager))
}

func cartRequest(t *testing.T, method, target, sessionID string, userID uuid.UUID, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)

	ctx := req.Context()
	if sessionID != "" {
		ctx = context.WithValue(ctx, middleware.SessionContextKey, sessionID)
	}

	if userID != uuid.Nil {
		ctx = context.WithValue(ctx, middleware.UserContextKey, &models.Claims{UserID: userID})
	}

	return req.WithContext(ctx)
}

func decodeCartView(t *testing.T, rr *httptest.ResponseRecorder) models.CartView {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    models.CartView `json:"data"`
	}

	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.True(t, envelope.Success)

	return envelope.Data
}

func TestCartHandler_AddItem(t *testing.T) {

	t.Run("Success - Item Appears In The Returned View", func(t *testing.T) {
		// Arrange
		handler := setupCartHandlerTest(t)

		body := models.AddCartItemRequest{
			ID:       "7",
			Name:     "Dusk Over the Ghats",
			Price:    models.NewPrice(250),
			Quantity: 2,
		}
		req := cartRequest(t, http.MethodPost, "/api/v1/cart/items", "session-xyz", uuid.Nil, body)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		view := decodeCartView(t, rr)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Count)
		assert.InDelta(t, 500.0, view.Total, 0.001)
		assert.Equal(t, "guest", view.Scope)
		assert.True(t, view.DrawerOpen)
	})

	t.Run("Failure - Missing Session", func(t *testing.T) {
		// Arrange
		handler := setupCartHandlerTest(t)

		body := models.AddCartItemRequest{ID: "7", Name: "Dusk Over the Ghats", Quantity: 1}
		req := cartRequest(t, http.MethodPost, "/api/v1/cart/items", "", uuid.Nil, body)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Invalid Payload", func(t *testing.T) {
		// Arrange
		handler := setupCartHandlerTest(t)

		// quantity below the minimum
		body := models.AddCartItemRequest{ID: "7", Name: "Dusk Over the Ghats", Quantity: 0}
		req := cartRequest(t, http.MethodPost, "/api/v1/cart/items", "session-xyz", uuid.Nil, body)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCartHandler_GetCart(t *testing.T) {

	t.Run("Success - Authenticated Request Gets User Scope", func(t *testing.T) {
		// Arrange
		handler := setupCartHandlerTest(t)
		userID := uuid.New()

		req := cartRequest(t, http.MethodGet, "/api/v1/cart", "session-xyz", userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		view := decodeCartView(t, rr)
		assert.Equal(t, "user", view.Scope)
		assert.Empty(t, view.Items)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {

	t.Run("Success - Removed Line Leaves The View", func(t *testing.T) {
		// Arrange
		handler := setupCartHandlerTest(t)

		add := models.AddCartItemRequest{ID: "7", Name: "Dusk Over the Ghats", Price: models.NewPrice(250), Quantity: 1}
		addReq := cartRequest(t, http.MethodPost, "/api/v1/cart/items", "session-xyz", uuid.Nil, add)
		handler.AddItem().ServeHTTP(httptest.NewRecorder(), addReq)

		remove := models.RemoveCartItemRequest{ID: "7"}
		req := cartRequest(t, http.MethodDelete, "/api/v1/cart/items", "session-xyz", uuid.Nil, remove)
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		view := decodeCartView(t, rr)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.Count)
	})
}

func TestCartHandler_Drawer(t *testing.T) {

	t.Run("Success - Open Then Close", func(t *testing.T) {
		// Arrange
		handler := setupCartHandlerTest(t)

		openReq := cartRequest(t, http.MethodPost, "/api/v1/cart/drawer/open", "session-xyz", uuid.Nil, nil)
		openRR := httptest.NewRecorder()

		// Act
		handler.OpenDrawer().ServeHTTP(openRR, openReq)

		// Assert
		require.Equal(t, http.StatusOK, openRR.Code)
		assert.True(t, decodeCartView(t, openRR).DrawerOpen)

		closeReq := cartRequest(t, http.MethodPost, "/api/v1/cart/drawer/close", "session-xyz", uuid.Nil, nil)
		closeRR := httptest.NewRecorder()
		handler.CloseDrawer().ServeHTTP(closeRR, closeReq)

		require.Equal(t, http.StatusOK, closeRR.Code)
		assert.False(t, decodeCartView(t, closeRR).DrawerOpen)
	})
}
