package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input    string
		expected Config
	}{
		{"", *Default()},
		{DEFAULT_CONFIG_FILE, *Default()},
		{"max_call_depth: 0\n", Config{MaxCallDepth: 0, Color: COLOR_AUTO}},
		{"color: never\nshow_env: true\n", Config{MaxCallDepth: DEFAULT_MAX_CALL_DEPTH, Color: COLOR_NEVER, ShowEnv: true}},
		{DEFAULT_DEV_CONFIG_FILE, Config{MaxCallDepth: 1000, Color: COLOR_ALWAYS, ShowEnv: true}},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("Test(%d)", i), func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *cfg != test.expected {
				t.Errorf("expected %+v, but got %+v", test.expected, *cfg)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input    string
		sentinel error
	}{
		{"color: rainbow\n", ERR_INVALID_COLOR},
		{"max_call_depth: -1\n", ERR_NEGATIVE_CALL_DEPTH},
		{"unknown_field: 1\n", nil},
		{"max_call_depth: lots\n", nil},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("Test(%d)", i), func(t *testing.T) {
			_, err := Decode(strings.NewReader(test.input))
			if err == nil {
				t.Fatalf("expected an error for %q", test.input)
			}
			if test.sentinel != nil && !errors.Is(err, test.sentinel) {
				t.Errorf("expected %v, but got %v", test.sentinel, err)
			}
		})
	}
}

func TestSetupWritesDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	SetDevMode(false)

	cfg, err := Setup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPath := filepath.Join(home, APP_NAME, CONFIG_FILE)
	if cfg.Path != expectedPath {
		t.Errorf("expected config path %s, but got %s", expectedPath, cfg.Path)
	}

	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("expected default config file to be written: %v", err)
	}
	if string(content) != DEFAULT_CONFIG_FILE {
		t.Errorf("expected default config contents, but got %q", string(content))
	}
	if cfg.MaxCallDepth != DEFAULT_MAX_CALL_DEPTH {
		t.Errorf("expected default call depth, but got %d", cfg.MaxCallDepth)
	}
}

func TestSetupKeepsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	SetDevMode(false)

	dir := filepath.Join(home, APP_NAME)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte("max_call_depth: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Setup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 42 {
		t.Errorf("expected 42, but got %d", cfg.MaxCallDepth)
	}
}

func TestDevModeRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), CONFIG_FILE)
	if err := os.WriteFile(path, []byte("max_call_depth: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	SetDevMode(true)
	defer SetDevMode(false)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxCallDepth != 1000 || !cfg.ShowEnv {
		t.Errorf("expected dev defaults, but got %+v", *cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected a not-exist cause, but got %v", err)
	}
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		color    Color
		terminal bool
		expected bool
	}{
		{COLOR_AUTO, true, true},
		{COLOR_AUTO, false, false},
		{COLOR_ALWAYS, false, true},
		{COLOR_NEVER, true, false},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s/%v", test.color, test.terminal), func(t *testing.T) {
			cfg := &Config{Color: test.color}
			if cfg.UseColor(test.terminal) != test.expected {
				t.Errorf("expected %v, but got %v", test.expected, !test.expected)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	out, err := Default().YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "max_call_depth: 10000\ncolor: auto\nshow_env: false\n"
	if out != expected {
		t.Errorf("expected %q, but got %q", expected, out)
	}
}
