package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestAdapter_WritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "test"})
	defer Configure(Config{})

	a := NewAdapter("session")
	a.Debugf("notified %d", 3)
	a.Warnf("presenter failed: %s", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["component"] != "session" {
		t.Errorf("component = %v, want session", entry["component"])
	}
	if entry["service"] != "test" {
		t.Errorf("service = %v, want test", entry["service"])
	}
	if entry["message"] != "presenter failed: boom" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	defer Configure(Config{})

	NewAdapter("x").Debugf("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line should be filtered at warn level: %q", buf.String())
	}
}
