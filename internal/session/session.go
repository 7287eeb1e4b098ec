// Package session holds the admin session state. Two layers back it: a
// durable marker store (token + email, surviving restarts) and an in-memory
// authenticated flag. The Manager is the single authority over both and
// reconciles them on every evaluation, replacing the ad hoc two-store
// bookkeeping the dashboard previously did.
package session

import (
	"sync"

	"go.uber.org/zap"
)

// MarkerStore persists the durable session markers.
type MarkerStore interface {
	// Load returns the stored token and email; both empty when no session
	// markers exist.
	Load() (token, email string, err error)
	Save(token, email string) error
	Clear() error
}

// Manager reconciles the durable markers with the in-memory session state.
// All methods are safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	store  MarkerStore
	logger *zap.Logger

	authenticated bool
	token         string
	email         string
}

// NewManager creates a Manager over the given marker store.
func NewManager(store MarkerStore, logger *zap.Logger) *Manager {
	if store == nil {
		panic("session.NewManager requires a non-nil MarkerStore")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Evaluate reconciles the two layers and reports whether the session is
// authenticated:
//   - both markers present: the in-memory state is (re)hydrated from them,
//     covering a process restart where memory resets but markers persist;
//   - markers missing but memory still authenticated with a token: the
//     session stands;
//   - otherwise: both layers are defensively cleared, not just read.
func (m *Manager) Evaluate() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, email, err := m.store.Load()
	if err != nil {
		m.logger.Warn("Failed to load session markers", zap.Error(err))
	}

	if token != "" && email != "" {
		if !m.authenticated {
			m.logger.Info("Session restored from durable markers", zap.String("email", email))
		}
		m.authenticated = true
		m.token = token
		m.email = email
		return true
	}

	if m.authenticated && m.token != "" {
		return true
	}

	m.clearLocked()
	return false
}

// Sync is the startup alias for Evaluate; the returned state is ignored.
func (m *Manager) Sync() {
	m.Evaluate()
}

// Establish records a freshly authenticated session in both layers.
func (m *Manager) Establish(token, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(token, email); err != nil {
		return err
	}
	m.authenticated = true
	m.token = token
	m.email = email
	return nil
}

// Clear removes the session from both layers (logout or access denial).
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearLocked()
}

func (m *Manager) clearLocked() error {
	m.authenticated = false
	m.token = ""
	m.email = ""
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("Failed to clear session markers", zap.Error(err))
		return err
	}
	return nil
}

// Authenticated reports the in-memory state without reconciling.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Email returns the email of the current session, if any.
func (m *Manager) Email() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.email
}

// Token returns the token of the current session, if any.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}
