package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/Hanaasagi/powerprompt/pkg/powerline"
)

type Config struct {
	Core   CoreConfig  `toml:"core" yaml:"core"`
	Glyphs GlyphConfig `toml:"glyphs" yaml:"glyphs"`
}

type CoreConfig struct {
	Separator *string  `toml:"separator" yaml:"separator"` // nil keeps the default
	Dialect   string   `toml:"dialect" yaml:"dialect"`
	Segments  []string `toml:"segments" yaml:"segments"`
}

type GlyphConfig struct {
	Right string `toml:"right" yaml:"right"`
	Left  string `toml:"left" yaml:"left"`
}

func NewDefaultConfig() *Config {
	separator := " "
	glyphs := powerline.DefaultGlyphs()
	return &Config{
		Core: CoreConfig{
			Separator: &separator,
			Dialect:   "zsh",
			Segments:  []string{},
		},
		Glyphs: GlyphConfig{
			Right: glyphs.Right,
			Left:  glyphs.Left,
		},
	}
}

// DefaultConfigPath returns the first existing config file under
// $XDG_CONFIG_HOME/powerprompt, or the TOML path when none exists.
func DefaultConfigPath() string {
	dir := filepath.Join(xdg.ConfigHome, appName)
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, "config.toml")
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading YAML config: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to decode YAML config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
	}

	return config, nil
}

// Glyphset returns the configured glyphs, falling back to the powerline
// arrows for unset entries.
func (c *Config) Glyphset() powerline.Glyphs {
	glyphs := powerline.DefaultGlyphs()
	if c.Glyphs.Right != "" {
		glyphs.Right = c.Glyphs.Right
	}
	if c.Glyphs.Left != "" {
		glyphs.Left = c.Glyphs.Left
	}
	return glyphs
}
