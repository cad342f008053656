package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famomatic/nowplaying/metadata"
)

type recordingPresenter struct {
	got []NowPlaying
	err error
}

func (p *recordingPresenter) Present(np NowPlaying) error {
	p.got = append(p.got, np)
	return p.err
}

func (p *recordingPresenter) last(t *testing.T) NowPlaying {
	t.Helper()
	require.NotEmpty(t, p.got, "no presentations recorded")
	return p.got[len(p.got)-1]
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debugf(string, ...any) {}
func (l *recordingLogger) Warnf(format string, _ ...any) {
	l.warnings = append(l.warnings, format)
}

func TestSetMetadata_AttachesAndPresents(t *testing.T) {
	p := &recordingPresenter{}
	reg := NewRegistry(Config{Presenter: p})
	s := reg.Open()
	defer s.Close()

	r := metadata.New(metadata.Init{Title: "Song", Artist: "Band"})
	s.SetMetadata(r)

	assert.Same(t, r, s.Metadata())
	assert.True(t, r.Attached())
	assert.Equal(t, 0, s.Notifications(), "attaching is not a record notification")

	np := p.last(t)
	assert.Equal(t, s.ID(), np.SessionID)
	require.NotNil(t, np.Metadata)
	if diff := cmp.Diff(metadata.Init{Title: "Song", Artist: "Band"}, *np.Metadata); diff != "" {
		t.Fatalf("presented metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestMetadataChanged_OncePerSetter(t *testing.T) {
	p := &recordingPresenter{}
	s := NewRegistry(Config{Presenter: p}).Open()
	defer s.Close()

	r := metadata.New(metadata.Init{})
	s.SetMetadata(r)
	base := len(p.got)

	r.SetTitle("t")
	r.SetArtist("a")
	r.SetAlbum("b")
	r.SetAlbum("b")

	assert.Equal(t, 4, s.Notifications())
	assert.Len(t, p.got, base+4)
	assert.Equal(t, metadata.Init{Title: "t", Artist: "a", Album: "b"}, *p.last(t).Metadata)
}

func TestSetMetadata_ReplacesPreviousRecord(t *testing.T) {
	s := NewRegistry(Config{}).Open()
	defer s.Close()

	first := metadata.New(metadata.Init{Title: "first"})
	second := metadata.New(metadata.Init{Title: "second"})
	s.SetMetadata(first)
	s.SetMetadata(second)

	assert.False(t, first.Attached())
	assert.Nil(t, first.Link())
	first.SetTitle("ignored")
	assert.Equal(t, 0, s.Notifications())

	second.SetTitle("counted")
	assert.Equal(t, 1, s.Notifications())
}

func TestSetMetadata_MovesRecordBetweenSessions(t *testing.T) {
	pa := &recordingPresenter{}
	reg := NewRegistry(Config{Presenter: pa})
	a := reg.Open()
	b := reg.Open()
	defer a.Close()
	defer b.Close()

	r := metadata.New(metadata.Init{Title: "shared"})
	a.SetMetadata(r)
	b.SetMetadata(r)

	assert.Nil(t, a.Metadata(), "A must give up the record")
	assert.Same(t, r, b.Metadata())

	r.SetTitle("changed")
	assert.Equal(t, 0, a.Notifications())
	assert.Equal(t, 1, b.Notifications())
}

func TestSetMetadata_NilClears(t *testing.T) {
	p := &recordingPresenter{}
	s := NewRegistry(Config{Presenter: p}).Open()
	defer s.Close()

	r := metadata.New(metadata.Init{Title: "t"})
	s.SetMetadata(r)
	s.SetMetadata(nil)

	assert.Nil(t, s.Metadata())
	assert.Nil(t, p.last(t).Metadata)
	r.SetTitle("x")
	assert.Equal(t, 0, s.Notifications())
}

func TestPresenterError_IsAbsorbed(t *testing.T) {
	log := &recordingLogger{}
	p := &recordingPresenter{err: errors.New("widget gone")}
	s := NewRegistry(Config{Presenter: p, Logger: log}).Open()
	defer s.Close()

	r := metadata.New(metadata.Init{})
	s.SetMetadata(r)
	r.SetTitle("still works")

	assert.Equal(t, "still works", r.Title())
	assert.Equal(t, 1, s.Notifications())
	assert.Len(t, log.warnings, 2)
}

func TestRegistry_CloseExpiresHandles(t *testing.T) {
	reg := NewRegistry(Config{})
	s := reg.Open()
	h := s.Handle()
	assert.Equal(t, 1, reg.Len())

	r := metadata.New(metadata.Init{})
	s.SetMetadata(r)

	require.NoError(t, reg.Close(s.ID()))
	assert.Equal(t, 0, reg.Len())

	_, ok := h.Resolve()
	assert.False(t, ok)
	assert.False(t, r.Attached())

	r.SetTitle("after close")
	assert.Equal(t, 0, s.Notifications())

	err := reg.Close(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	s.Close()
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry(Config{})
	s := reg.Open()
	defer s.Close()

	got, ok := reg.Lookup(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	var zero Handle
	_, ok = zero.Resolve()
	assert.False(t, ok)
}
