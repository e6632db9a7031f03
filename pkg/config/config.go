// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/user/memecanvas/pkg/adapters/placeholder"
	"github.com/user/memecanvas/pkg/assets"
	"github.com/user/memecanvas/pkg/editor"
	"github.com/user/memecanvas/pkg/meme"
)

// Config represents the full configuration for memecanvas.
type Config struct {
	// Canvas
	CanvasWidth  int            `yaml:"canvas_width"`
	CanvasHeight int            `yaml:"canvas_height"`
	FontSize     FontSizeConfig `yaml:"font_size"`
	FontPath     string         `yaml:"font_path"`

	// Templates
	TemplateDir string            `yaml:"template_dir"`
	Templates   map[string]string `yaml:"templates"`

	// Output
	ExportDir string `yaml:"export_dir"`

	// Style
	Theme ThemeConfig `yaml:"theme"`

	// Logging and debug
	LogLevel string `yaml:"log_level"`
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// FontSizeConfig bounds the shared font size.
type FontSizeConfig struct {
	Default float64 `yaml:"default"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// ThemeConfig holds the colors of the idle screen and the placeholder.
type ThemeConfig struct {
	IdleBackground  string `yaml:"idle_background"`
	IdleText        string `yaml:"idle_text"`
	PlaceholderFrom string `yaml:"placeholder_from"`
	PlaceholderTo   string `yaml:"placeholder_to"`
	PlaceholderText string `yaml:"placeholder_text"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		CanvasWidth:  600,
		CanvasHeight: 600,
		FontSize: FontSizeConfig{
			Default: 48,
			Min:     12,
			Max:     120,
		},

		TemplateDir: ".",
		Templates:   assets.Default().Map(),

		ExportDir: ".",

		Theme: ThemeConfig{
			IdleBackground:  "#2a2a2a",
			IdleText:        "#999999",
			PlaceholderFrom: "#4a5568",
			PlaceholderTo:   "#2d3748",
			PlaceholderText: "#cbd5e0",
		},

		LogLevel: "info",
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Relative directories in the file are resolved against the file's directory.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if file.Templates != nil {
		// A templates section replaces the built-in catalog instead of
		// merging into it.
		cfg.Templates = file.Templates
	}

	base := filepath.Dir(path)
	for _, dir := range []*string{&cfg.TemplateDir, &cfg.ExportDir, &cfg.DebugDir, &cfg.FontPath} {
		if *dir != "" && !filepath.IsAbs(*dir) {
			*dir = filepath.Join(base, *dir)
		}
	}

	return cfg, cfg.Validate()
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	fs := c.FontSize
	if fs.Min <= 0 || fs.Max < fs.Min {
		return fmt.Errorf("invalid font size range %v-%v", fs.Min, fs.Max)
	}
	if fs.Default < fs.Min || fs.Default > fs.Max {
		return fmt.Errorf("default font size %v outside %v-%v", fs.Default, fs.Min, fs.Max)
	}
	th := c.Theme
	for _, entry := range []struct{ key, value string }{
		{"idle_background", th.IdleBackground},
		{"idle_text", th.IdleText},
		{"placeholder_from", th.PlaceholderFrom},
		{"placeholder_to", th.PlaceholderTo},
		{"placeholder_text", th.PlaceholderText},
	} {
		if _, err := ParseColor(entry.value); err != nil {
			return fmt.Errorf("theme.%s: %w", entry.key, err)
		}
	}
	return nil
}

// Catalog returns the configured templates with paths under TemplateDir.
func (c Config) Catalog() *assets.Catalog {
	return assets.New(c.Templates).WithBase(c.TemplateDir)
}

// ToEditorOptions converts Config to editor.Options.
func (c Config) ToEditorOptions() editor.Options {
	return editor.Options{
		Bounds:         meme.Size{Width: c.CanvasWidth, Height: c.CanvasHeight},
		FontSize:       c.FontSize.Default,
		MinFontSize:    c.FontSize.Min,
		MaxFontSize:    c.FontSize.Max,
		IdleBackground: themeColor(c.Theme.IdleBackground),
		IdleText:       themeColor(c.Theme.IdleText),
	}
}

// PlaceholderTheme returns the colors of generated placeholder images.
func (c Config) PlaceholderTheme() placeholder.Theme {
	return placeholder.Theme{
		From: themeColor(c.Theme.PlaceholderFrom),
		To:   themeColor(c.Theme.PlaceholderTo),
		Text: themeColor(c.Theme.PlaceholderText),
	}
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color. The leading "#" may
// be omitted.
func ParseColor(s string) (color.Color, error) {
	hex := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	// Hex stops scanning at the first non-hex digit, so compare the
	// result against the input to reject trailing garbage.
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if c.Hex() != hex {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// themeColor parses a color already checked by Validate.
func themeColor(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return color.Black
	}
	return c
}
