package session

import (
	"github.com/google/uuid"

	"github.com/famomatic/nowplaying/metadata"
)

// NowPlaying is what a session hands its presenter on each refresh.
type NowPlaying struct {
	SessionID uuid.UUID
	// Metadata is nil when the session has no active record.
	Metadata *metadata.Init
}

// Presenter renders now-playing state to some platform surface.
type Presenter interface {
	Present(np NowPlaying) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(NowPlaying) error

func (f PresenterFunc) Present(np NowPlaying) error { return f(np) }
