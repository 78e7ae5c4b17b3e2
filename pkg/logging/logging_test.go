package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"propsight/pkg/logging"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

		logger.Info("listing stored", "count", 3)

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if record["msg"] != "listing stored" || record["count"] != 3.0 {
			t.Errorf("record = %v", record)
		}
	})

	t.Run("level gating", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

		logger.Info("suppressed")
		logger.Warn("kept")

		out := buf.String()
		if strings.Contains(out, "suppressed") {
			t.Errorf("info should be gated at warn level: %q", out)
		}
		if !strings.Contains(out, "kept") {
			t.Errorf("warn should pass: %q", out)
		}
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&logging.Config{Level: "verbose", Format: logging.FormatText}, &buf)

		logger.Debug("suppressed")
		logger.Info("kept")

		out := buf.String()
		if strings.Contains(out, "suppressed") || !strings.Contains(out, "kept") {
			t.Errorf("unknown level should behave as info: %q", out)
		}
	})
}

func TestValidate(t *testing.T) {
	if err := logging.Level("debug").Validate(); err != nil {
		t.Errorf("debug: %v", err)
	}
	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("verbose should be rejected")
	}
	if err := logging.Format("json").Validate(); err != nil {
		t.Errorf("json: %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("xml should be rejected")
	}
}
