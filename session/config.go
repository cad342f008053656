package session

// Config holds configuration shared by every session opened in a Registry.
type Config struct {
	// Presenter renders now-playing state on every refresh.
	// If nil, presentations are dropped.
	Presenter Presenter

	// Logger receives presenter failures and debug traces.
	// If nil, logs are discarded.
	Logger Logger
}

func (c Config) withDefaults() Config {
	if c.Presenter == nil {
		c.Presenter = PresenterFunc(func(NowPlaying) error { return nil })
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
	return c
}
