package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/anayakhandelwal/artisan-gallery-platform/internal/metrics"
	"github.com/anayakhandelwal/artisan-gallery-platform/internal/models"
	"github.com/google/uuid"
)

type Scope string

const (
	ScopeGuest   Scope = "guest"
	ScopeSyncing Scope = "syncing"
	ScopeUser    Scope = "user"
)

const defaultWriteTimeout = 5 * time.Second

// GuestStore backs guest-scope carts: a single JSON string per session,
// written synchronously on every mutation and deleted outright when a login
// merge consumes it.
type GuestStore interface {
	Read(ctx context.Context, sessionID string) (string, error)
	Write(ctx context.Context, sessionID string, payload string) error
	Delete(ctx context.Context, sessionID string) error
}

// RemoteStore is the per-user cart store. ReplaceCart always receives the
// full current item list, never a delta; MergeCart folds a guest cart into
// the stored one additively by composite key and returns the merged list.
type RemoteStore interface {
	FetchCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	ReplaceCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) error
	MergeCart(ctx context.Context, userID uuid.UUID, items []models.CartItem) ([]models.CartItem, error)
}

// Synchronizer owns the in-memory cart for one storefront session and keeps
// whichever backing store matches the current scope eventually consistent
// with it. The in-memory cart is the source of truth between loads; backing
// stores never override it except at Load time.
type Synchronizer struct {
	mu           sync.Mutex
	sessionID    string
	userID       uuid.UUID
	scope        Scope
	items        []models.CartItem
	loading      bool
	drawerOpen   bool
	guest        GuestStore
	remote       RemoteStore
	logger       *slog.Logger
	writeTimeout time.Duration
}

// NewSynchronizer builds the synchronizer for a session. A non-nil userID
// means the session arrived already authenticated, which starts the scope at
// User directly without a guest merge.
func NewSynchronizer(sessionID string, userID uuid.UUID, guest GuestStore, remote RemoteStore, logger *slog.Logger) *Synchronizer {

	scope := ScopeGuest
	if userID != uuid.Nil {
		scope = ScopeUser
	}

	return &Synchronizer{
		sessionID:    sessionID,
		userID:       userID,
		scope:        scope,
		guest:        guest,
		remote:       remote,
		logger:       logger.With(slog.String("cart_session", sessionID)),
		writeTimeout: defaultWriteTimeout,
	}
}

// Load populates the in-memory cart from the scope's backing store. A remote
// fetch failure falls back to guest storage rather than presenting an empty
// cart; corrupt guest payloads load as an empty cart. Load never fails.
func (s *Synchronizer) Load(ctx context.Context) {

	s.mu.Lock()
	s.loading = true
	scope := s.scope
	userID := s.userID
	s.mu.Unlock()

	var items []models.CartItem

	if scope == ScopeUser {
		fetched, err := s.remote.FetchCart(ctx, userID)
		if err != nil {
			s.logger.Warn("Remote cart fetch failed, falling back to guest storage",
				slog.String("user_id", userID.String()), slog.String("error", err.Error()))

			items = s.readGuest(ctx)
		} else {
			items = fetched
		}
	} else {
		items = s.readGuest(ctx)
	}

	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
}

// AddToCart merges the item into the line with the same composite key,
// adding quantities, or appends a new line. Every add opens the drawer.
func (s *Synchronizer) AddToCart(ctx context.Context, item models.CartItem) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := findLine(s.items, item.Key()); idx >= 0 {
		s.items[idx].Quantity += item.Quantity
	} else {
		s.items = append(s.items, item)
	}

	s.drawerOpen = true

	s.persistLocked(ctx)
}

// RemoveFromCart drops the unique line matching (id, variant). An omitted
// variant matches only the variant-less line; it is not a wildcard. Missing
// lines are a silent no-op.
func (s *Synchronizer) RemoveFromCart(ctx context.Context, id models.ProductID, variant string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findLine(s.items, models.CartKey{ID: id, Variant: variant})
	if idx < 0 {
		return
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)

	s.persistLocked(ctx)
}

// UpdateQuantity overwrites the quantity of the matching line. A quantity of
// zero or below removes the line, so a quantity <= 0 is never persisted.
// Missing lines are a silent no-op.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, id models.ProductID, quantity int, variant string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findLine(s.items, models.CartKey{ID: id, Variant: variant})
	if idx < 0 {
		return
	}

	if quantity <= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		s.items[idx].Quantity = quantity
	}

	s.persistLocked(ctx)
}

// ClearCart empties the cart regardless of scope.
func (s *Synchronizer) ClearCart(ctx context.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	s.persistLocked(ctx)
}

// CartTotal sums numeric(price) * quantity over all lines.
func (s *Synchronizer) CartTotal() float64 {

	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64

	for _, item := range s.items {
		total += item.Price.Amount() * float64(item.Quantity)
	}

	return total
}

// CartCount is the number of units in the cart, not the number of lines.
func (s *Synchronizer) CartCount() int {

	s.mu.Lock()
	defer s.mu.Unlock()

	var count int

	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

func (s *Synchronizer) OpenDrawer() {
	s.mu.Lock()
	s.drawerOpen = true
	s.mu.Unlock()
}

func (s *Synchronizer) CloseDrawer() {
	s.mu.Lock()
	s.drawerOpen = false
	s.mu.Unlock()
}

// Snapshot returns the current cart state for the storefront.
func (s *Synchronizer) Snapshot() models.CartView {

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	var total float64

	var count int

	for _, item := range items {
		total += item.Price.Amount() * float64(item.Quantity)
		count += item.Quantity
	}

	scope := s.scope
	if scope == ScopeSyncing {
		// a merge in flight still behaves as guest for callers
		scope = ScopeGuest
	}

	return models.CartView{
		Items:      items,
		Scope:      string(scope),
		Count:      count,
		Total:      total,
		DrawerOpen: s.drawerOpen,
		Loading:    s.loading,
	}
}

// SetIdentity reacts to the identity signal. The absent-to-present flip
// fires the one-time guest merge; logout deliberately does not clear or
// rescope the cart.
func (s *Synchronizer) SetIdentity(ctx context.Context, userID uuid.UUID) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == uuid.Nil {
		s.logger.Debug("Identity cleared, cart keeps its current scope")
		return
	}

	if s.scope == ScopeUser {
		s.userID = userID
		return
	}

	s.mergeGuestCartLocked(ctx, userID)
}

// mergeGuestCartLocked runs the Guest -> Syncing -> User transition. An empty
// guest cart skips the merge RPC and loads the remote cart as-is. A failed
// merge leaves guest storage untouched and the session functionally guest.
func (s *Synchronizer) mergeGuestCartLocked(ctx context.Context, userID uuid.UUID) {

	s.scope = ScopeSyncing
	s.userID = userID

	guestItems := s.readGuest(ctx)

	if len(guestItems) == 0 {
		fetched, err := s.remote.FetchCart(ctx, userID)
		if err != nil {
			s.logger.Warn("Remote cart fetch after login failed",
				slog.String("user_id", userID.String()), slog.String("error", err.Error()))

			fetched = nil
		}

		s.items = fetched
		s.scope = ScopeUser

		metrics.ObserveCartMerge("skipped")

		return
	}

	merged, err := s.remote.MergeCart(ctx, userID, guestItems)
	if err != nil {
		s.logger.Warn("Guest cart merge failed, keeping guest scope for this session",
			slog.String("user_id", userID.String()), slog.String("error", err.Error()))

		s.scope = ScopeGuest
		s.userID = uuid.Nil

		metrics.ObserveCartMerge("failed")

		return
	}

	s.items = merged

	// one-way consumption of the guest cart
	if err := s.guest.Delete(ctx, s.sessionID); err != nil {
		s.logger.Warn("Failed to delete consumed guest cart", slog.String("error", err.Error()))
	}

	s.scope = ScopeUser

	metrics.ObserveCartMerge("merged")
}

// persistLocked mirrors the current cart to the scope's backing store. Guest
// writes are synchronous; user writes are fire-and-forget and always carry
// the full snapshot so the last write to land is a complete cart.
func (s *Synchronizer) persistLocked(ctx context.Context) {

	snapshot := make([]models.CartItem, len(s.items))
	copy(snapshot, s.items)

	if s.scope == ScopeUser {
		userID := s.userID

		go func() {
			writeCtx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
			defer cancel()

			if err := s.remote.ReplaceCart(writeCtx, userID, snapshot); err != nil {
				metrics.ObserveCartPersistFailure()
				s.logger.Warn("Remote cart write-through failed",
					slog.String("user_id", userID.String()), slog.String("error", err.Error()))
			}
		}()

		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("Failed to marshal guest cart", slog.String("error", err.Error()))
		return
	}

	if err := s.guest.Write(ctx, s.sessionID, string(payload)); err != nil {
		s.logger.Warn("Guest cart write-through failed", slog.String("error", err.Error()))
	}
}

func (s *Synchronizer) readGuest(ctx context.Context) []models.CartItem {

	payload, err := s.guest.Read(ctx, s.sessionID)
	if err != nil {
		s.logger.Warn("Guest cart read failed", slog.String("error", err.Error()))
		return nil
	}

	if payload == "" {
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		s.logger.Warn("Corrupt guest cart payload, treating as empty", slog.String("error", err.Error()))
		return nil
	}

	return items
}

func findLine(items []models.CartItem, key models.CartKey) int {
	for i, item := range items {
		if item.Key() == key {
			return i
		}
	}

	return -1
}
