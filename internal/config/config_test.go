package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/famomatic/nowplaying/metadata"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    FileConfig
		wantErr error
	}{
		{
			name: "empty uses defaults",
			yaml: "",
			want: Default(),
		},
		{
			name: "full",
			yaml: `
logLevel: debug
presenter: log
timeout: 5s
file: song.mp3
metadata:
  title: Title
  album: Album
  artwork: ignored
scripts: [a.js, b.js]
`,
			want: FileConfig{
				LogLevel:  "debug",
				Presenter: PresenterLog,
				Timeout:   5 * time.Second,
				File:      "song.mp3",
				Metadata:  metadata.Init{Title: "Title", Album: "Album"},
				Scripts:   []string{"a.js", "b.js"},
			},
		},
		{
			name:    "bad presenter",
			yaml:    "presenter: lcd\n",
			wantErr: ErrUnknownPresenter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nowplaying.yaml")
	if err := os.WriteFile(p, []byte("presenter: none\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Presenter != PresenterNone || cfg.Timeout != DefaultTimeout {
		t.Fatalf("Load() = %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load() on missing file should fail")
	}
}
