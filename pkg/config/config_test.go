package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"src.gramsh.sh/pkg/config"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "gramsh.yaml", `
grammar_file: grammar.txt
help_file: help.txt
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want default %q", cfg.Prompt, "> ")
	}
	if cfg.MaxCompletions != 100 {
		t.Errorf("MaxCompletions = %d, want default 100", cfg.MaxCompletions)
	}
	if cfg.Color != config.ColorAuto {
		t.Errorf("Color = %q, want default %q", cfg.Color, config.ColorAuto)
	}
	if cfg.GrammarFile != "grammar.txt" || cfg.HelpFile != "help.txt" {
		t.Errorf("GrammarFile/HelpFile = %q/%q, want grammar.txt/help.txt", cfg.GrammarFile, cfg.HelpFile)
	}
}

func TestLoadOverridesAndColor(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "gramsh.yaml", `
prompt: "router# "
max_completions: 20
color: always
grammar_file: g.txt
help_file: h.txt
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prompt != "router# " {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
	if cfg.MaxCompletions != 20 {
		t.Errorf("MaxCompletions = %d", cfg.MaxCompletions)
	}
	if cfg.Color != config.ColorAlways {
		t.Errorf("Color = %q", cfg.Color)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "gramsh.yaml", "color: sometimes\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("Load: want error for invalid color, got nil")
	}
}

func TestLoadRejectsNegativeMaxCompletions(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "gramsh.yaml", "max_completions: -1\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("Load: want error for negative max_completions, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load: want error for missing file, got nil")
	}
}
