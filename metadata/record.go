// Package metadata holds the "now playing" record a media session presents.
package metadata

// Record is a mutable title/artist/album record that notifies the session
// it is attached to whenever a field is set.
//
// A Record is owned by a single caller at a time and is not safe for
// concurrent use.
type Record struct {
	title  string
	artist string
	album  string

	link Link
}

// New creates an unattached Record from init. Fields are copied verbatim.
func New(init Init) *Record {
	return &Record{
		title:  init.Title,
		artist: init.Artist,
		album:  init.Album,
	}
}

func (r *Record) Title() string { return r.title }

// SetTitle overwrites the title and notifies the attached session.
func (r *Record) SetTitle(v string) {
	r.title = v
	r.notify()
}

func (r *Record) Artist() string { return r.artist }

// SetArtist overwrites the artist and notifies the attached session.
func (r *Record) SetArtist(v string) {
	r.artist = v
	r.notify()
}

func (r *Record) Album() string { return r.album }

// SetAlbum overwrites the album and notifies the attached session.
func (r *Record) SetAlbum(v string) {
	r.album = v
	r.notify()
}

// Snapshot returns a copy of the current field values.
func (r *Record) Snapshot() Init {
	return Init{
		Title:  r.title,
		Artist: r.artist,
		Album:  r.album,
	}
}

// Attach links the record to a session, replacing any previous link.
// A nil link detaches.
func (r *Record) Attach(l Link) {
	r.link = l
}

// Detach drops the session link. Setters stop notifying until the next Attach.
func (r *Record) Detach() {
	r.link = nil
}

// Link returns the current session link, or nil.
func (r *Record) Link() Link {
	return r.link
}

// Attached reports whether the record has a link that still resolves.
func (r *Record) Attached() bool {
	if r.link == nil {
		return false
	}
	_, ok := r.link.Resolve()
	return ok
}

// notify runs once per setter call. No coalescing.
func (r *Record) notify() {
	if r.link == nil {
		return
	}
	n, ok := r.link.Resolve()
	if !ok || n == nil {
		return
	}
	n.MetadataChanged()
}
