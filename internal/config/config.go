// Package config loads detector settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	apperrors "github.com/ironsheep/dark-pattern-detector/internal/errors"
)

// EnvConfigFile names the environment variable holding the YAML config path.
const EnvConfigFile = "DPD_CONFIG"

type Config struct {
	Language       string `yaml:"language"`
	TessdataPrefix string `yaml:"tessdata_prefix"`
	PreviewSize    int    `yaml:"preview_size"`
	WindowWidth    int    `yaml:"window_width"`
	WindowHeight   int    `yaml:"window_height"`
	LogLevel       string `yaml:"log_level"`
	AccentColor    string `yaml:"accent_color"`
}

// Default returns the settings the detector runs with when nothing is configured.
func Default() *Config {
	return &Config{
		Language:     "eng",
		PreviewSize:  400,
		WindowWidth:  700,
		WindowHeight: 700,
		LogLevel:     "info",
		AccentColor:  "#c0392b",
	}
}

// Load builds a Config from defaults, the file named by DPD_CONFIG (if set)
// and DPD_* environment overrides, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewConfig("failed to read config file", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return apperrors.NewConfig(fmt.Sprintf("failed to parse %s", path), err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Language = getEnv("DPD_LANGUAGE", c.Language)
	c.TessdataPrefix = getEnv("DPD_TESSDATA_PREFIX", c.TessdataPrefix)
	c.LogLevel = getEnv("DPD_LOG_LEVEL", c.LogLevel)
	c.AccentColor = getEnv("DPD_ACCENT_COLOR", c.AccentColor)

	var err error
	if c.PreviewSize, err = getEnvInt("DPD_PREVIEW_SIZE", c.PreviewSize); err != nil {
		return err
	}
	if c.WindowWidth, err = getEnvInt("DPD_WINDOW_WIDTH", c.WindowWidth); err != nil {
		return err
	}
	if c.WindowHeight, err = getEnvInt("DPD_WINDOW_HEIGHT", c.WindowHeight); err != nil {
		return err
	}
	return nil
}

// Validate rejects settings the detector cannot start with. The log level is
// normalized to lower case first, whichever source set it.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if strings.TrimSpace(c.Language) == "" {
		return apperrors.NewConfig("language must not be empty", nil)
	}
	if c.PreviewSize <= 0 {
		return apperrors.NewConfig(fmt.Sprintf("preview_size must be positive, got %d", c.PreviewSize), nil)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return apperrors.NewConfig(fmt.Sprintf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight), nil)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfig(fmt.Sprintf("unknown log_level %q", c.LogLevel), nil)
	}
	if _, err := colorful.Hex(c.AccentColor); err != nil {
		return apperrors.NewConfig(fmt.Sprintf("invalid accent_color %q", c.AccentColor), err)
	}
	return nil
}

// Languages splits Language on '+' the way Tesseract names combined models.
func (c *Config) Languages() []string {
	parts := strings.Split(c.Language, "+")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			langs = append(langs, t)
		}
	}
	return langs
}

// Accent returns the parsed accent color, falling back to black.
func (c *Config) Accent() color.Color {
	col, err := colorful.Hex(c.AccentColor)
	if err != nil {
		return color.Black
	}
	return col.Clamped()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, apperrors.NewConfig(fmt.Sprintf("%s must be an integer, got %q", key, v), err)
	}
	return i, nil
}
