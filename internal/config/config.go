package config

import (
	"encoding/json"
	"fmt"
	"os"

	"ned-enu-converter/internal/frame"
)

// Config holds the interactive server settings.
type Config struct {
	ListenAddr string `json:"listen_addr"`

	// Page defaults
	InputFrame  string `json:"default_input_frame"`
	OutputFrame string `json:"default_output_frame"`

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

const (
	DefaultListenAddr  = "127.0.0.1:8080"
	DefaultRenderSize  = 256
	DefaultSupersample = 2

	// MaxRenderExtent caps the supersampled canvas edge, size·supersample.
	MaxRenderExtent = 4096

	maxRenderSize  = 2048
	maxSupersample = 8
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ListenAddr  string
	RenderSize  int
	Supersample int
	LogLevel    string
}

// Resolve applies flag overrides, then fills any empty field with its default.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.ListenAddr != "" {
		c.ListenAddr = flags.ListenAddr
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.InputFrame == "" {
		c.InputFrame = frame.NED.String()
	}
	if c.OutputFrame == "" {
		c.OutputFrame = frame.ENU.String()
	}
	if c.RenderSize <= 0 {
		c.RenderSize = DefaultRenderSize
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

// Validate checks a resolved config.
func (c Config) Validate() error {
	if _, err := frame.Parse(c.InputFrame); err != nil {
		return fmt.Errorf("config: default_input_frame: %w", err)
	}
	if _, err := frame.Parse(c.OutputFrame); err != nil {
		return fmt.Errorf("config: default_output_frame: %w", err)
	}
	if c.RenderSize > maxRenderSize {
		return fmt.Errorf("config: render_size %d exceeds %d", c.RenderSize, maxRenderSize)
	}
	if c.Supersample > maxSupersample {
		return fmt.Errorf("config: supersample %d exceeds %d", c.Supersample, maxSupersample)
	}
	if c.RenderSize*c.Supersample > MaxRenderExtent {
		return fmt.Errorf("config: render_size %d with supersample %d exceeds %d px", c.RenderSize, c.Supersample, MaxRenderExtent)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: log_format %q: want console or json", c.LogFormat)
	}
	return nil
}

// Frames returns the parsed default input and output frames.
// Call after Validate.
func (c Config) Frames() (in, out frame.Frame) {
	in, _ = frame.Parse(c.InputFrame)
	out, _ = frame.Parse(c.OutputFrame)
	return in, out
}
