// Package config loads the small YAML document that configures a gramsh
// engine instance: the prompt, completion cap, color policy and the paths
// to the grammar and help source files (SPEC_FULL.md §10.6). This has no
// analogue in the distilled spec; the original C recli_config_t bundled
// these ad hoc as struct fields with no file format at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color selects when ANSI highlighting is used for error carets and help
// listings.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the engine-level configuration surface. banner, envp, dir and
// permissions paths are deliberately absent: those belong to the
// out-of-scope shell loop, exec layer and permissions matcher.
type Config struct {
	Prompt         string `yaml:"prompt"`
	MaxCompletions int    `yaml:"max_completions"`
	Color          Color  `yaml:"color"`
	GrammarFile    string `yaml:"grammar_file"`
	HelpFile       string `yaml:"help_file"`
}

// Default returns a Config with the values gramsh falls back to when a
// field is absent from the YAML document.
func Default() Config {
	return Config{
		Prompt:         "> ",
		MaxCompletions: 100,
		Color:          ColorAuto,
	}
}

// Load reads and parses the YAML document at path over Default(), so an
// omitted field keeps its default rather than becoming zero-valued.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: color must be auto, always or never, got %q", c.Color)
	}
	if c.MaxCompletions < 0 {
		return fmt.Errorf("config: max_completions must not be negative, got %d", c.MaxCompletions)
	}
	return nil
}
