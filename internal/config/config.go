// Package config loads optional run settings from a JSON or YAML file. Every
// field may be left empty; command-line flags override file values and the
// CLI prompts for paths that are still missing.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-glossgen/pkg/render/markup"
)

// Config holds the settings for one glossary run.
type Config struct {
	Input   string `json:"input" yaml:"input"`
	Output  string `json:"output" yaml:"output"`
	Title   string `json:"title" yaml:"title"`
	Heading string `json:"heading" yaml:"heading"`
	Markup  string `json:"markup" yaml:"markup"`
	// Templates is a folder overriding the embedded page and index templates.
	Templates string `json:"templates" yaml:"templates"`
	// Lenient accepts a final entry without the trailing blank line.
	Lenient bool `json:"lenient" yaml:"lenient"`
}

// Load reads path and decodes it as JSON or YAML. Relative paths in the file
// are resolved against the file's directory.
func Load(path string) (Config, error) {
	if !isConfigFile(path) {
		return Config{}, fmt.Errorf("config: %s: unsupported extension (want .json, .yaml or .yml)", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parseDocument(data, path)
	if err != nil {
		return Config{}, err
	}

	base := filepath.Dir(path)
	cfg.Input = resolve(base, cfg.Input)
	cfg.Output = resolve(base, cfg.Output)
	cfg.Templates = resolve(base, cfg.Templates)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge returns c with every non-empty field of override applied on top.
func (c Config) Merge(override Config) Config {
	out := c
	if s := strings.TrimSpace(override.Input); s != "" {
		out.Input = s
	}
	if s := strings.TrimSpace(override.Output); s != "" {
		out.Output = s
	}
	if s := strings.TrimSpace(override.Title); s != "" {
		out.Title = s
	}
	if s := strings.TrimSpace(override.Heading); s != "" {
		out.Heading = s
	}
	if s := strings.TrimSpace(override.Markup); s != "" {
		out.Markup = s
	}
	if s := strings.TrimSpace(override.Templates); s != "" {
		out.Templates = s
	}
	if override.Lenient {
		out.Lenient = true
	}
	return out
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if _, err := markup.ParseMode(c.Markup); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// MarkupMode returns the parsed markup mode, defaulting to raw.
func (c Config) MarkupMode() (markup.Mode, error) {
	return markup.ParseMode(c.Markup)
}

func parseDocument(data []byte, source string) (Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return cfg, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func resolve(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
