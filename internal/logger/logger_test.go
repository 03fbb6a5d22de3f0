package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/samvad-hq/samvad-news-fetcher/internal/config"
)

func TestInitWritesJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	sugar, err := initWithWriter(&config.Config{LogLevel: "warn"}, &buf)
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	log := New(sugar)

	log.InfoObj("dropped", "k", 1)
	log.WarnObj("kept", "fetch_meta", map[string]any{"topic": "go"})
	_ = sugar.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "kept" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts field in %v", entry)
	}
	if _, ok := entry["fetch_meta"]; !ok {
		t.Fatalf("expected fetch_meta field in %v", entry)
	}
}

func TestNewNilReturnsNop(t *testing.T) {
	if _, ok := New(nil).(NopLogger); !ok {
		t.Fatal("expected NopLogger for nil sugared logger")
	}
}
