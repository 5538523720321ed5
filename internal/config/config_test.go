package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/mgpai22/cueview/internal/caption"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ViewportHeight != 360 || cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	content := `viewport_height: 720
language: he
tick_interval: 100ms
log_level: debug
`
	path := filepath.Join(t.TempDir(), "cueview.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ViewportHeight != 720 {
		t.Errorf("viewport_height = %v, want 720", cfg.ViewportHeight)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("tick_interval = %s, want 100ms", cfg.TickInterval)
	}
	if cfg.StrictStyles {
		t.Errorf("strict_styles should keep its default")
	}

	lang, err := cfg.CaptionLanguage()
	if err != nil {
		t.Fatalf("CaptionLanguage() error: %v", err)
	}
	if lang.Direction != caption.DirectionRTL {
		t.Errorf("direction = %q, want rtl", lang.Direction)
	}

	level, err := cfg.Level()
	if err != nil || level != zapcore.DebugLevel {
		t.Errorf("Level() = %v, %v", level, err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	content := `viewport_height: 0
tick_interval: -1s
log_level: trace
language: "??"
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "viewport_height") {
		t.Errorf("error does not mention viewport_height: %v", err)
	}

	cfg := Default()
	cfg.ViewportHeight = -1
	cfg.TickInterval = 0
	cfg.LogLevel = "trace"
	cfg.Language = "??"
	if n := len(multierr.Errors(cfg.Validate())); n != 4 {
		t.Errorf("expected 4 problems, got %d", n)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
