package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/handnotes/pkg/logging"
)

func TestNewHandler_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf))

	logger.Info("page uploaded", "page_index", 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json output invalid: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "page uploaded" {
		t.Errorf("msg = %v, want page uploaded", entry["msg"])
	}

	buf.Reset()
	text := slog.New(logging.NewHandler(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf))
	text.Info("ocr complete")

	if !strings.Contains(buf.String(), "msg=\"ocr complete\"") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestNewHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf))

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message missing")
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}

	bad := &logging.Config{Level: "verbose"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() should reject an unknown level")
	}
}
