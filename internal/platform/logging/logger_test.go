package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var item map[string]any
		if err := sonic.UnmarshalString(line, &item); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, item)
	}
	return out
}

func TestLogger_WritesServiceFieldsAndArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Service: "capp-data-server", Env: "dev", Output: &buf})

	logger.With("league", "cfb").Info("poll finished", "games", 3, "error", errors.New("boom"))
	logger.Debug("dropped")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line["msg"] != "poll finished" || line["level"] != "INFO" {
		t.Fatalf("unexpected line: %v", line)
	}
	if line["service"] != "capp-data-server" || line["env"] != "dev" {
		t.Fatalf("missing service metadata: %v", line)
	}
	if line["league"] != "cfb" || line["games"] != float64(3) || line["error"] != "boom" {
		t.Fatalf("unexpected fields: %v", line)
	}
}

func TestLogger_OddArgsAndNilReceiver(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(Options{Level: LevelDebug, Output: &buf}))
	t.Cleanup(func() { SetDefault(nil) })

	var logger *Logger
	logger.Warn("dangling", "key")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected nil logger to use default, got %d lines", len(lines))
	}
	if _, ok := lines[0]["key"]; !ok {
		t.Fatalf("expected dangling key to be kept: %v", lines[0])
	}
}
