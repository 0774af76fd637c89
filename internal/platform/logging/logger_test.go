package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).Named("auction")

	logger.Info("player sold", "auction_id", "auc-1", "sold_price", int64(1200), "error", errors.New("boom"))
	_ = logger.Sync()

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected a log line")
	}

	var decoded map[string]any
	if err := sonic.UnmarshalString(line, &decoded); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if decoded["msg"] != "player sold" {
		t.Fatalf("unexpected msg: %v", decoded["msg"])
	}
	if decoded["logger"] != "auction" {
		t.Fatalf("unexpected logger name: %v", decoded["logger"])
	}
	if decoded["auction_id"] != "auc-1" {
		t.Fatalf("unexpected auction_id: %v", decoded["auction_id"])
	}
	if decoded["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", decoded["error"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("ignored")
	logger.Debug("ignored too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}
