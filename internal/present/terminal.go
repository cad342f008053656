// Package present renders session now-playing state.
package present

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/famomatic/nowplaying/session"
)

// Terminal draws a now-playing card to W on every presentation.
type Terminal struct {
	W     io.Writer
	Width int
}

// NewTerminal returns a Terminal presenter with a default card width.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{W: w, Width: 48}
}

func (t *Terminal) Present(np session.NowPlaying) error {
	_, err := io.WriteString(t.W, t.Render(np)+"\n")
	return err
}

// Render returns the card for np without writing it.
func (t *Terminal) Render(np session.NowPlaying) string {
	headingStyle := lipgloss.NewStyle().
		Width(t.Width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("86"))
	infoStyle := lipgloss.NewStyle().
		Width(t.Width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color("87"))

	s := headingStyle.Render("Now Playing")
	s += "\n"
	if np.Metadata == nil {
		return s + infoStyle.Render("Nothing playing")
	}

	lines := make([]string, 0, 3)
	for _, v := range []string{np.Metadata.Title, np.Metadata.Artist, np.Metadata.Album} {
		if v != "" {
			lines = append(lines, v)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "Untitled")
	}
	return s + infoStyle.Render(strings.Join(lines, "\n"))
}

// Multi fans a presentation out to every presenter and joins their errors.
type Multi []session.Presenter

func (m Multi) Present(np session.NowPlaying) error {
	var errs []error
	for i, p := range m {
		if err := p.Present(np); err != nil {
			errs = append(errs, fmt.Errorf("presenter %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
