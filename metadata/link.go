package metadata

// Notifier is the entry point a session exposes for metadata changes.
type Notifier interface {
	// MetadataChanged signals that some field of the attached record changed.
	MetadataChanged()
}

// Link is a non-owning reference from a Record to the session using it.
// Resolve reports false once the session has gone away; an expired link
// behaves exactly like no link at all.
type Link interface {
	Resolve() (Notifier, bool)
}
