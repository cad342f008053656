// Package cli implements the nowplaying command.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/famomatic/nowplaying/internal/config"
	"github.com/famomatic/nowplaying/internal/host"
	"github.com/famomatic/nowplaying/internal/log"
	"github.com/famomatic/nowplaying/internal/metrics"
	"github.com/famomatic/nowplaying/internal/present"
	"github.com/famomatic/nowplaying/internal/tags"
	"github.com/famomatic/nowplaying/metadata"
	"github.com/famomatic/nowplaying/session"
)

// Options holds all command-line options.
type Options struct {
	ConfigFile string // --config

	// Seed metadata
	File   string // --file
	Title  string // --title
	Artist string // --artist
	Album  string // --album

	// Output
	Presenter string // --presenter
	LogLevel  string // --log-level
	PrintJSON bool   // --print-json
	Metrics   bool   // --metrics

	Timeout time.Duration // --timeout
	Scripts []string
}

// Snapshot is the --print-json document.
type Snapshot struct {
	Session       string `json:"session"`
	Active        bool   `json:"active"`
	Title         string `json:"title,omitempty"`
	Artist        string `json:"artist,omitempty"`
	Album         string `json:"album,omitempty"`
	Notifications int    `json:"notifications"`
}

// NewCommand builds the root command.
func NewCommand() *cobra.Command {
	opts := Options{}
	cmd := &cobra.Command{
		Use:   "nowplaying [flags] [script.js ...]",
		Short: "Run media session scripts and present now-playing metadata",
		Long: "nowplaying hosts MediaMetadata and navigator.mediaSession for JavaScript files, " +
			"optionally seeded from an audio file's tags, and renders every metadata change.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Scripts = args
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	f.StringVar(&opts.File, "file", "", "Seed metadata from this audio file's tags")
	f.StringVar(&opts.Title, "title", "", "Seed title")
	f.StringVar(&opts.Artist, "artist", "", "Seed artist")
	f.StringVar(&opts.Album, "album", "", "Seed album")
	f.StringVar(&opts.Presenter, "presenter", config.PresenterTerminal, "Presenter: terminal, log or none")
	f.StringVar(&opts.LogLevel, "log-level", "info", "Log level")
	f.BoolVar(&opts.PrintJSON, "print-json", false, "Print the final now-playing state as JSON")
	f.BoolVar(&opts.Metrics, "metrics", false, "Print Prometheus metrics on exit")
	f.DurationVar(&opts.Timeout, "timeout", config.DefaultTimeout, "Per-script timeout")
	return cmd
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(cmd *cobra.Command, opts Options) (config.FileConfig, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return config.FileConfig{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("presenter") {
		cfg.Presenter = opts.Presenter
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.Timeout
	}
	if opts.File != "" {
		cfg.File = opts.File
	}
	// An explicitly empty flag clears the value from the file.
	if flags.Changed("title") {
		cfg.Metadata.Title = opts.Title
	}
	if flags.Changed("artist") {
		cfg.Metadata.Artist = opts.Artist
	}
	if flags.Changed("album") {
		cfg.Metadata.Album = opts.Album
	}
	cfg.Scripts = append(cfg.Scripts, opts.Scripts...)
	return cfg, cfg.Validate()
}

// Run executes the configured scripts against a fresh host.
func Run(ctx context.Context, cfg config.FileConfig, opts Options, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Configure(log.Config{Level: cfg.LogLevel, Output: stderr})

	h, err := host.New(host.Config{
		Session: session.Config{
			Presenter: newPresenter(cfg.Presenter, stdout),
			Logger:    log.NewAdapter("session"),
		},
		Logger: log.NewAdapter("script"),
	})
	if err != nil {
		return err
	}
	defer h.Close()

	if err := seed(h, cfg); err != nil {
		return err
	}

	for _, path := range cfg.Scripts {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if err := runScript(ctx, h, cfg.Timeout, path, string(src)); err != nil {
			return err
		}
	}

	if opts.PrintJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snapshot(h.Session())); err != nil {
			return err
		}
	}
	if opts.Metrics {
		return metrics.WriteText(stdout, nil)
	}
	return nil
}

func runScript(ctx context.Context, h *host.Host, timeout time.Duration, name, src string) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return h.RunScriptContext(ctx, name, src)
}

func seed(h *host.Host, cfg config.FileConfig) error {
	seedInit := metadata.Init{}
	if cfg.File != "" {
		fromTags, err := tags.ReadFile(cfg.File)
		switch {
		case errors.Is(err, tags.ErrNoTags):
			logger := log.WithComponent("tags")
			logger.Warn().Str("file", cfg.File).Msg("no tags found")
		case err != nil:
			return err
		default:
			seedInit = fromTags
		}
	}
	seedInit = seedInit.Merge(cfg.Metadata)
	if seedInit.IsZero() && cfg.File == "" {
		return nil
	}

	obj, _, err := h.NewMetadata(seedInit)
	if err != nil {
		return fmt.Errorf("seed metadata: %w", err)
	}
	return h.SetMetadata(obj)
}

func newPresenter(name string, stdout io.Writer) session.Presenter {
	switch name {
	case config.PresenterTerminal:
		return present.NewTerminal(stdout)
	case config.PresenterLog:
		return present.Log{L: log.WithComponent("presenter")}
	default:
		return nil
	}
}

func snapshot(s *session.Session) Snapshot {
	out := Snapshot{
		Session:       s.ID().String(),
		Notifications: s.Notifications(),
	}
	if rec := s.Metadata(); rec != nil {
		snap := rec.Snapshot()
		out.Active = true
		out.Title = snap.Title
		out.Artist = snap.Artist
		out.Album = snap.Album
	}
	return out
}
