package logrus

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"chatty", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l := NewLogger(tt.in, "text")
			if l.Level() != tt.want {
				t.Errorf("Level() = %v, want %v", l.Level(), tt.want)
			}
		})
	}
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithOutput(&buf, "debug", "json")

	l.Info("feed loaded", map[string]interface{}{
		"index":   2,
		"entries": 10,
	})

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["msg"] != "feed loaded" {
		t.Errorf("msg = %v, want 'feed loaded'", line["msg"])
	}
	if line["level"] != "info" {
		t.Errorf("level = %v, want info", line["level"])
	}
	if line["index"] != float64(2) {
		t.Errorf("index = %v, want 2", line["index"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithOutput(&buf, "warn", "text")

	l.Debug("hidden debug", nil)
	l.Info("hidden info", nil)
	l.Warn("visible warn", map[string]interface{}{"url": "http://example.com"})
	l.Error("visible error", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn should be dropped: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("warn and error should be written: %q", out)
	}
	if !strings.Contains(out, "url=") {
		t.Errorf("fields should be rendered: %q", out)
	}
}
