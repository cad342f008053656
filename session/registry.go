package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/famomatic/nowplaying/internal/metrics"
	"github.com/famomatic/nowplaying/metadata"
)

// Registry is the host-owned lookup table of live sessions. Records never
// point at a Session directly; they hold a Handle resolved through here.
type Registry struct {
	config Config

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(config Config) *Registry {
	return &Registry{
		config:   config.withDefaults(),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Open registers a new session under a fresh ID.
func (r *Registry) Open() *Session {
	s := &Session{
		id:        uuid.New(),
		registry:  r,
		presenter: r.config.Presenter,
		logger:    r.config.Logger,
	}
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()

	metrics.SessionOpened()
	s.logger.Debugf("session %s opened", s.id)
	return s
}

// Lookup returns the live session registered under id.
func (r *Registry) Lookup(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Close unregisters the session. Handles to it expire immediately.
func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("close %s: %w", id, ErrSessionNotFound)
	}

	metrics.SessionClosed()
	s.logger.Debugf("session %s closed", id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Handle is a non-owning reference to a session: an ID plus the registry
// that resolves it. It implements metadata.Link.
type Handle struct {
	id       uuid.UUID
	registry *Registry
}

// ID returns the session ID the handle refers to.
func (h Handle) ID() uuid.UUID { return h.id }

// Session resolves the handle, reporting false once the session is closed.
func (h Handle) Session() (*Session, bool) {
	if h.registry == nil {
		return nil, false
	}
	return h.registry.Lookup(h.id)
}

// Resolve implements metadata.Link.
func (h Handle) Resolve() (metadata.Notifier, bool) {
	s, ok := h.Session()
	if !ok {
		return nil, false
	}
	return s, true
}
