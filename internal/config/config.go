// Package config holds persistent menukit settings. Settings live in
// config.json, config.toml or config.yaml in the user config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/markup"
	"github.com/OpenTraceLab/menukit/pkg/menu"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileNames lists the config files looked up, in order of preference.
var FileNames = []string{"config.json", "config.toml", "config.yaml", "config.yml"}

// ErrUnsupportedFile is returned for config files of unknown type.
var ErrUnsupportedFile = errors.New("unsupported config file type")

// Config stores persistent settings. Command line flags override them.
type Config struct {
	Strict   bool   `json:"strict" toml:"strict" yaml:"strict"`
	Verbose  bool   `json:"verbose" toml:"verbose" yaml:"verbose"`
	Bundle   string `json:"bundle,omitempty" toml:"bundle,omitempty" yaml:"bundle,omitempty"`
	IconSize int    `json:"icon_size" toml:"icon_size" yaml:"icon_size"`
	// Shape forces a container shape; empty means use the root tag.
	Shape string `json:"shape,omitempty" toml:"shape,omitempty" yaml:"shape,omitempty"`
	// Format forces a markup syntax; empty means detect.
	Format string `json:"format,omitempty" toml:"format,omitempty" yaml:"format,omitempty"`

	Tray    TrayConfig    `json:"tray" toml:"tray" yaml:"tray"`
	Preview PreviewConfig `json:"preview" toml:"preview" yaml:"preview"`
}

// TrayConfig configures the tray command.
type TrayConfig struct {
	Title   string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Tooltip string `json:"tooltip,omitempty" toml:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	Icon    string `json:"icon,omitempty" toml:"icon,omitempty" yaml:"icon,omitempty"`
}

// PreviewConfig configures the preview window.
type PreviewConfig struct {
	Width    int  `json:"width" toml:"width" yaml:"width"`
	Height   int  `json:"height" toml:"height" yaml:"height"`
	DarkMode bool `json:"dark_mode" toml:"dark_mode" yaml:"dark_mode"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		IconSize: icon.DefaultSize,
		Tray: TrayConfig{
			Tooltip: "menukit",
			Icon:    "icons:ActionSettings",
		},
		Preview: PreviewConfig{
			Width:  720,
			Height: 480,
		},
	}
}

// Validate checks the configuration, fills in zero values and expands a
// leading ~ in paths.
func (c *Config) Validate() error {
	if c.Bundle != "" {
		bundle, err := homedir.Expand(c.Bundle)
		if err != nil {
			return fmt.Errorf("bundle: %w", err)
		}
		c.Bundle = bundle
	}
	if c.IconSize < 1 {
		c.IconSize = icon.DefaultSize
	}
	if c.IconSize > 256 {
		return fmt.Errorf("icon_size %d out of range (1-256)", c.IconSize)
	}
	if c.Shape != "" {
		if _, err := menu.ParseShape(c.Shape); err != nil {
			return err
		}
	}
	if c.Format != "" {
		if _, err := markup.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Preview.Width < 200 {
		c.Preview.Width = 200
	}
	if c.Preview.Height < 150 {
		c.Preview.Height = 150
	}
	return nil
}

// Dir returns the platform config directory:
// %APPDATA%\menukit on Windows, ~/.config/menukit elsewhere.
func Dir() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "menukit"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "menukit"), nil
}

// Find returns the first existing config file in dir, or "" if none.
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadDefault loads the config file from Dir. A missing file yields
// DefaultConfig.
func LoadDefault() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return DefaultConfig(), err
	}
	path := Find(dir)
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Load reads path, decoding by extension over DefaultConfig, and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFile)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in the format its extension names, creating the
// directory if needed.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFile)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
