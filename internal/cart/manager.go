package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Manager owns one Synchronizer per storefront session. Synchronizers are
// created on first touch and live until Remove; there is no implicit
// eviction on logout.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Synchronizer
	guest    GuestStore
	remote   RemoteStore
	logger   *slog.Logger
}

func NewManager(guest GuestStore, remote RemoteStore, logger *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Synchronizer),
		guest:    guest,
		remote:   remote,
		logger:   logger,
	}
}

// Get returns the session's synchronizer, creating and loading it on first
// touch. When an existing guest synchronizer sees an identity appear, the
// guest merge fires here.
func (m *Manager) Get(ctx context.Context, sessionID string, userID uuid.UUID) *Synchronizer {

	m.mu.Lock()
	s, ok := m.sessions[sessionID]

	if !ok {
		s = NewSynchronizer(sessionID, userID, m.guest, m.remote, m.logger)
		m.sessions[sessionID] = s
		m.mu.Unlock()

		s.Load(ctx)

		return s
	}
	m.mu.Unlock()

	if userID != uuid.Nil {
		s.SetIdentity(ctx, userID)
	}

	return s
}

// Remove tears down a session's synchronizer. The backing stores keep
// whatever was last written through.
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}
