// Package session implements the media session a metadata.Record reports
// changes to, and the registry that owns session lifetimes.
package session

import (
	"github.com/google/uuid"

	"github.com/famomatic/nowplaying/internal/metrics"
	"github.com/famomatic/nowplaying/metadata"
)

// Session presents the now-playing state of one playback context.
// Like the records it holds, a Session has a single owner and is not safe
// for concurrent use.
type Session struct {
	id        uuid.UUID
	registry  *Registry
	presenter Presenter
	logger    Logger

	metadata      *metadata.Record
	notifications int
}

func (s *Session) ID() uuid.UUID { return s.id }

// Handle returns a non-owning reference to s.
func (s *Session) Handle() Handle {
	return Handle{id: s.id, registry: s.registry}
}

// Metadata returns the active record, or nil.
func (s *Session) Metadata() *metadata.Record {
	return s.metadata
}

// Notifications returns how many change signals the session has received.
func (s *Session) Notifications() int {
	return s.notifications
}

// SetMetadata makes r the session's active record and refreshes the
// presentation. A record belongs to at most one session and a session holds
// at most one record: the previous record is detached, and a live session
// that currently holds r gives it up. A nil r clears the presentation.
func (s *Session) SetMetadata(r *metadata.Record) {
	if s.metadata != nil && s.metadata != r {
		s.metadata.Detach()
	}
	if r != nil {
		if h, ok := r.Link().(Handle); ok && h.id != s.id {
			if other, ok := h.Session(); ok {
				other.release(r)
			}
		}
		r.Attach(s.Handle())
	}
	s.metadata = r
	s.refresh()
}

// MetadataChanged implements metadata.Notifier. Presenter failures are
// logged and never reach the record's setter.
func (s *Session) MetadataChanged() {
	s.notifications++
	metrics.IncMetadataNotification()
	s.logger.Debugf("session %s: metadata changed", s.id)
	s.refresh()
}

// Close unregisters the session. Calling it again is a no-op.
func (s *Session) Close() {
	if _, ok := s.registry.Lookup(s.id); !ok {
		return
	}
	_ = s.registry.Close(s.id)
}

func (s *Session) release(r *metadata.Record) {
	if s.metadata != r {
		return
	}
	s.metadata = nil
	s.refresh()
}

func (s *Session) refresh() {
	np := NowPlaying{SessionID: s.id}
	if s.metadata != nil {
		snap := s.metadata.Snapshot()
		np.Metadata = &snap
	}
	err := s.presenter.Present(np)
	metrics.ObservePresentation(err)
	if err != nil {
		s.logger.Warnf("session %s: present now playing: %v", s.id, err)
	}
}
