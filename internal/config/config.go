package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EditionBackground = "background"
	EditionCaption    = "caption"
	EditionAdaptive   = "adaptive"

	DisplayAuto  = "auto"
	DisplayColor = "color"
	DisplayMono  = "mono"

	ClockFormat24h    = "24h"
	ClockFormat12h    = "12h"
	ClockFormatLocale = "locale"

	OutputFramebuffer = "framebuffer"
	OutputPNG         = "png"
	OutputTerminal    = "terminal"
)

const (
	// DefaultConfigFilename is looked up in the working directory when no
	// path is given. A missing default file is not an error.
	DefaultConfigFilename = "clockface.yaml"

	DefaultFramebuffer = "/dev/fb0"
	DefaultPNGPath     = "clockface.png"
	DefaultImage       = "doge"

	// Logical canvas of a 144x168 watch display.
	DefaultCanvasWidth  = 144
	DefaultCanvasHeight = 168
)

const (
	EnvEdition     = "CLOCKFACE_EDITION"
	EnvDisplay     = "CLOCKFACE_DISPLAY"
	EnvClockFormat = "CLOCKFACE_CLOCK_FORMAT"
	EnvOutput      = "CLOCKFACE_OUTPUT"
	EnvImage       = "CLOCKFACE_IMAGE"
	EnvSeed        = "CLOCKFACE_SEED"
	EnvLogLevel    = "CLOCKFACE_LOG_LEVEL"
	EnvStdioLog    = "CLOCKFACE_STDIO_LOG"
)

var (
	ErrUnknownEdition     = errors.New("unknown edition")
	ErrUnknownDisplay     = errors.New("unknown display mode")
	ErrUnknownClockFormat = errors.New("unknown clock format")
	ErrUnknownOutput      = errors.New("unknown output")
	ErrInvalidCanvas      = errors.New("canvas size must be positive")
)

// FontSpec names a built-in Go font ("gobold", "goregular", "gomono") or a
// TTF/OTF file path, at a point size.
type FontSpec struct {
	Name string  `yaml:"name"`
	Size float64 `yaml:"size"`
}

type Config struct {
	Edition     string `yaml:"edition"`
	Display     string `yaml:"display"`
	ClockFormat string `yaml:"clock_format"`

	// Image is an opaque resource identifier, see assets.Loader.
	Image        string `yaml:"image"`
	ImageMaxSize int    `yaml:"image_max_size"`

	TimeFont    FontSpec `yaml:"time_font"`
	CaptionFont FontSpec `yaml:"caption_font"`

	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`

	Output      string `yaml:"output"`
	Framebuffer string `yaml:"framebuffer"`
	PNGPath     string `yaml:"png_path"`

	// Seed of the variant random source. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
	// TickPeriod replaces minute-aligned ticks when non-zero.
	TickPeriod time.Duration `yaml:"tick_period"`

	LogLevel string `yaml:"log_level"`
	StdioLog string `yaml:"stdio_log"`
	ExitOnF4 bool   `yaml:"exit_on_f4"`
	NoImage  bool   `yaml:"no_image"`
}

// Default returns the stock face: background edition, 24h clock, doge image.
func Default() Config {
	return Config{
		Edition:      EditionBackground,
		Display:      DisplayAuto,
		ClockFormat:  ClockFormat24h,
		Image:        DefaultImage,
		ImageMaxSize: 96,
		TimeFont:     FontSpec{Name: "gobold", Size: 38},
		CaptionFont:  FontSpec{Name: "goregular", Size: 18},
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		Output:       OutputFramebuffer,
		Framebuffer:  DefaultFramebuffer,
		PNGPath:      DefaultPNGPath,
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. An empty path tries DefaultConfigFilename and
// tolerates its absence.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config %s: %w", path, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from CLOCKFACE_* variables.
func ApplyEnv(cfg *Config) error {
	setString := func(env string, dst *string) {
		if raw := strings.TrimSpace(os.Getenv(env)); raw != "" {
			*dst = raw
		}
	}
	setString(EnvEdition, &cfg.Edition)
	setString(EnvDisplay, &cfg.Display)
	setString(EnvClockFormat, &cfg.ClockFormat)
	setString(EnvOutput, &cfg.Output)
	setString(EnvImage, &cfg.Image)
	setString(EnvLogLevel, &cfg.LogLevel)
	setString(EnvStdioLog, &cfg.StdioLog)

	if raw := strings.TrimSpace(os.Getenv(EnvSeed)); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an unsigned integer (got %q): %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}
	return nil
}

// Validate normalises case and fills zero values, then rejects unknown
// enum values.
func Validate(cfg *Config) error {
	defaults := Default()

	cfg.Edition = normalise(cfg.Edition, defaults.Edition)
	cfg.Display = normalise(cfg.Display, defaults.Display)
	cfg.ClockFormat = normalise(cfg.ClockFormat, defaults.ClockFormat)
	cfg.Output = normalise(cfg.Output, defaults.Output)

	switch cfg.Edition {
	case EditionBackground, EditionCaption, EditionAdaptive:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEdition, cfg.Edition)
	}

	switch cfg.Display {
	case DisplayAuto, DisplayColor, DisplayMono:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDisplay, cfg.Display)
	}

	switch cfg.ClockFormat {
	case ClockFormat24h, ClockFormat12h, ClockFormatLocale:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownClockFormat, cfg.ClockFormat)
	}

	switch cfg.Output {
	case OutputFramebuffer, OutputPNG, OutputTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, cfg.Output)
	}

	if cfg.CanvasWidth == 0 && cfg.CanvasHeight == 0 {
		cfg.CanvasWidth, cfg.CanvasHeight = defaults.CanvasWidth, defaults.CanvasHeight
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, cfg.CanvasWidth, cfg.CanvasHeight)
	}

	if strings.TrimSpace(cfg.Image) == "" {
		cfg.Image = defaults.Image
	}
	if cfg.ImageMaxSize <= 0 {
		cfg.ImageMaxSize = defaults.ImageMaxSize
	}
	if cfg.TimeFont.Name == "" {
		cfg.TimeFont.Name = defaults.TimeFont.Name
	}
	if cfg.TimeFont.Size <= 0 {
		cfg.TimeFont.Size = defaults.TimeFont.Size
	}
	if cfg.CaptionFont.Name == "" {
		cfg.CaptionFont.Name = defaults.CaptionFont.Name
	}
	if cfg.CaptionFont.Size <= 0 {
		cfg.CaptionFont.Size = defaults.CaptionFont.Size
	}
	if cfg.Framebuffer == "" {
		cfg.Framebuffer = defaults.Framebuffer
	}
	if cfg.PNGPath == "" {
		cfg.PNGPath = defaults.PNGPath
	}
	if cfg.TickPeriod < 0 {
		cfg.TickPeriod = 0
	}

	return nil
}

func normalise(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
