package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cliclock/cliclock/internal/layout"
	"github.com/cliclock/cliclock/internal/segment"
	"github.com/cliclock/cliclock/internal/validate"
)

const (
	maxConfigSize = 64 * 1024 // a few keys; anything larger is not a config file

	appDir         = "cliclock"
	configFileName = "config.yaml"
)

// ErrConfigTooLarge is returned for config files over maxConfigSize.
var ErrConfigTooLarge = errors.New("config file too large")

// Config is the user-facing configuration. Field names double as YAML keys.
type Config struct {
	TwelveHour bool `yaml:"twelve_hour"`
	// Foreground is the glyph digits are painted with. Empty paints each
	// digit with its own decimal character.
	Foreground string `yaml:"foreground" validate:"omitempty,glyph"`
	Background string `yaml:"background" validate:"required,glyph"`
	Layout     string `yaml:"layout" validate:"required,oneof=bordered grouped"`
	TUI        bool   `yaml:"tui"`
}

// Default returns 24-hour time in solid blocks on a blank background, bordered.
func Default() Config {
	return Config{
		Foreground: string(segment.FullBlock),
		Background: " ",
		Layout:     layout.ModeBordered,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, configFileName), nil
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	expanded, err := expandTilde(path)
	if err != nil {
		return cfg, err
	}

	logrus.Debug("Loading config file from: ", expanded)
	data, err := readFile(expanded)
	if errors.Is(err, fs.ErrNotExist) && !required {
		logrus.Debug("No config file; using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", expanded, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Glyphs returns the rasterizer glyphs. An empty Foreground selects the
// digit-character fallback.
func (c Config) Glyphs() segment.Glyphs {
	return segment.Glyphs{Fg: firstRune(c.Foreground), Bg: firstRune(c.Background)}
}

// Strategy returns the layout strategy named by Layout.
func (c Config) Strategy() (layout.Strategy, error) {
	return layout.ByName(c.Layout)
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// readFile reads a file with sane limits to prevent attacks.
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, info.Size(), maxConfigSize)
	}

	return io.ReadAll(io.LimitReader(file, maxConfigSize))
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
