// Package tags builds metadata initializers from audio file tags.
package tags

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhowden/tag"

	"github.com/famomatic/nowplaying/metadata"
)

// ErrNoTags indicates the file carries no recognised tag block.
var ErrNoTags = errors.New("no tags found")

// Read extracts title, artist and album from an ID3, MP4, FLAC or Ogg tag block.
func Read(r io.ReadSeeker) (metadata.Init, error) {
	m, err := tag.ReadFrom(r)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return metadata.Init{}, ErrNoTags
		}
		return metadata.Init{}, fmt.Errorf("read tags: %w", err)
	}
	return metadata.Init{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}, nil
}

// ReadFile opens path and reads its tags.
func ReadFile(path string) (metadata.Init, error) {
	f, err := os.Open(path)
	if err != nil {
		return metadata.Init{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	md, err := Read(f)
	if err != nil {
		return metadata.Init{}, fmt.Errorf("%s: %w", path, err)
	}
	return md, nil
}
