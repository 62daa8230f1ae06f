package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.LevelInfo, "text", &buf)

	logger.Debug("hidden")
	logger.Error("function implementation error", "error", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "err=boom") {
		t.Errorf("error key should be renamed to err: %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(slog.LevelDebug, "JSON", &buf).Debug("registered", "function", "SUM")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["function"] != "SUM" {
		t.Errorf("function = %v, want SUM", line["function"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}
