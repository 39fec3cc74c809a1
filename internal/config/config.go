package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	API     APIConfig    `yaml:"api" json:"api"`
	Output  OutputConfig `yaml:"output" json:"output"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
}

// APIConfig configures the analysis backend
type APIConfig struct {
	BaseURL  string        `yaml:"base_url" json:"base_url"` // root address of the analysis service
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`   // 0 disables the client timeout
	Language string        `yaml:"language" json:"language"` // en|es, empty lets the backend decide
}

// OutputConfig configures output formatting and diagnostics
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	LogFile       string `yaml:"log_file" json:"log_file"` // diagnostics destination while the TUI owns the terminal
}

// UIConfig configures the interactive terminal UI
type UIConfig struct {
	Theme   string `yaml:"theme" json:"theme"` // default|high-contrast|minimal
	NoEmoji bool   `yaml:"no_emoji" json:"no_emoji"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		API: APIConfig{
			BaseURL:  "",
			Timeout:  0,
			Language: "",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			LogFile:       "",
		},
		UI: UIConfig{
			Theme:   "default",
			NoEmoji: false,
		},
	}
}

// Validate validates the configuration.
// An empty base URL is allowed here; commands that talk to the backend
// reject it when they build the client.
func (c *Config) Validate() error {
	if err := c.validateAPIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAPIConfig() error {
	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid api base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid api base_url: %s (scheme must be http or https)", c.API.BaseURL)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid api base_url: %s (missing host)", c.API.BaseURL)
		}
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api timeout must be non-negative")
	}
	if c.API.Language != "" {
		validLanguages := map[string]bool{
			"en": true,
			"es": true,
		}
		if !validLanguages[c.API.Language] {
			return fmt.Errorf("invalid api language: %s (must be one of: en, es)", c.API.Language)
		}
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	return nil
}
