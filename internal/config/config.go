// Package config loads the CLI's YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/famomatic/nowplaying/metadata"
)

const (
	PresenterTerminal = "terminal"
	PresenterLog      = "log"
	PresenterNone     = "none"

	DefaultTimeout = 30 * time.Second
)

// FileConfig is the on-disk configuration. Every field is optional.
type FileConfig struct {
	LogLevel  string        `yaml:"logLevel"`
	Presenter string        `yaml:"presenter"`
	Timeout   time.Duration `yaml:"timeout"`

	// File seeds metadata from an audio file's tags.
	File string `yaml:"file"`
	// Metadata seeds metadata directly and overrides tags read from File.
	Metadata metadata.Init `yaml:"metadata"`
	// Scripts run in order after seeding.
	Scripts []string `yaml:"scripts"`
}

// ErrUnknownPresenter indicates an unsupported presenter name.
var ErrUnknownPresenter = errors.New("unknown presenter")

// Default returns the configuration used when no file is given.
func Default() FileConfig {
	return FileConfig{
		LogLevel:  "info",
		Presenter: PresenterTerminal,
		Timeout:   DefaultTimeout,
	}
}

// Load reads path and applies defaults for missing fields.
func Load(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML. Unknown keys are ignored, as in metadata initializers.
func Parse(data []byte) (FileConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c FileConfig) Validate() error {
	switch c.Presenter {
	case PresenterTerminal, PresenterLog, PresenterNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPresenter, c.Presenter)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	return nil
}
