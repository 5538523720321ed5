package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mgpai22/cueview/internal/caption"
)

// settings shared by every command
type Config struct {
	// pixels, used for MIDDLE placement
	ViewportHeight float64 `yaml:"viewport_height"`
	// BCP 47 tag or a literal direction
	Language string `yaml:"language"`
	// unknown style spans drop all styling of a cue instead of being skipped
	StrictStyles bool          `yaml:"strict_styles"`
	TickInterval time.Duration `yaml:"tick_interval"`
	LogLevel     string        `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		ViewportHeight: 360,
		Language:       "ltr",
		StrictStyles:   false,
		TickInterval:   250 * time.Millisecond,
		LogLevel:       "info",
	}
}

// Load overlays the YAML file at path on the defaults. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	var err error
	if c.ViewportHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("viewport_height must be positive, got %v", c.ViewportHeight))
	}
	if c.TickInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if _, lerr := caption.ParseLanguage(c.Language); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	if _, lerr := c.Level(); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	return err
}

// Level is the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	switch c.LogLevel {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("log_level must be debug or info, got %q", c.LogLevel)
	}
}

// CaptionLanguage is the configured language.
func (c *Config) CaptionLanguage() (caption.Language, error) {
	return caption.ParseLanguage(c.Language)
}
