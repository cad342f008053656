package metadata

// Init is the initializer a Record is constructed from.
// Missing fields are empty text.
type Init struct {
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist" yaml:"artist"`
	Album  string `json:"album" yaml:"album"`
}

// IsZero reports whether all fields are empty.
func (i Init) IsZero() bool {
	return i.Title == "" && i.Artist == "" && i.Album == ""
}

// Merge returns i with every non-empty field of o applied on top.
func (i Init) Merge(o Init) Init {
	if o.Title != "" {
		i.Title = o.Title
	}
	if o.Artist != "" {
		i.Artist = o.Artist
	}
	if o.Album != "" {
		i.Album = o.Album
	}
	return i
}
