package present

import (
	"github.com/rs/zerolog"

	"github.com/famomatic/nowplaying/session"
)

// Log emits one structured event per presentation.
type Log struct {
	L zerolog.Logger
}

func (l Log) Present(np session.NowPlaying) error {
	ev := l.L.Info().Str("session", np.SessionID.String())
	if np.Metadata == nil {
		ev.Bool("active", false).Msg("now playing cleared")
		return nil
	}
	ev.Bool("active", true).
		Str("title", np.Metadata.Title).
		Str("artist", np.Metadata.Artist).
		Str("album", np.Metadata.Album).
		Msg("now playing updated")
	return nil
}
