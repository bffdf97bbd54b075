package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ERR_INVALID_COLOR       = errors.New("invalid color mode")
	ERR_NEGATIVE_CALL_DEPTH = errors.New("max_call_depth must not be negative")
)

const (
	APP_NAME    = "monkey"
	CONFIG_FILE = "config.yaml"

	DEFAULT_MAX_CALL_DEPTH = 10000
)

var DEFAULT_CONFIG_FILE string = `# maximum number of nested function calls, 0 disables the limit
max_call_depth: 10000
# auto, always or never
color: auto
# print the top-level bindings after "monkey run"
show_env: false
`

var DEFAULT_DEV_CONFIG_FILE string = `max_call_depth: 1000
color: always
show_env: true
`

type Color string

const (
	COLOR_AUTO   Color = "auto"
	COLOR_ALWAYS Color = "always"
	COLOR_NEVER  Color = "never"
)

type Config struct {
	MaxCallDepth int   `yaml:"max_call_depth"`
	Color        Color `yaml:"color"`
	ShowEnv      bool  `yaml:"show_env"`

	// Path is the file the configuration was loaded from, if any.
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		MaxCallDepth: DEFAULT_MAX_CALL_DEPTH,
		Color:        COLOR_AUTO,
		ShowEnv:      false,
	}
}

// Setup resolves the monkey config directory, writing a default config
// file there if none exists yet, and loads it.
func Setup() (*Config, error) {
	dir, err := getConfigDir(APP_NAME)
	if err != nil {
		return nil, err
	}
	return LoadOrCreate(filepath.Join(dir, CONFIG_FILE))
}

// LoadOrCreate loads the config at path. A missing file is created with
// the default contents first. In dev mode the file is always rewritten.
func LoadOrCreate(path string) (*Config, error) {
	_, err := os.Stat(path)
	missing := os.IsNotExist(err)
	if err != nil && !missing {
		return nil, errors.Wrapf(err, "could not stat config file %s", path)
	}

	if missing || DEV {
		content := DEFAULT_CONFIG_FILE
		if DEV {
			content = DEFAULT_DEV_CONFIG_FILE
		}
		if err := writeStringToFile(path, content); err != nil {
			return nil, errors.Wrapf(err, "could not write default config file %s", path)
		}
	}

	return Load(path)
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open config file %s", path)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load config file %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Decode reads a YAML config from r. Fields that are not set keep their
// default values and unknown fields are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Color {
	case COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		return errors.Wrapf(ERR_INVALID_COLOR, "%q (expected auto, always or never)", cfg.Color)
	}
	if cfg.MaxCallDepth < 0 {
		return errors.Wrapf(ERR_NEGATIVE_CALL_DEPTH, "got %d", cfg.MaxCallDepth)
	}
	return nil
}

// UseColor decides whether output should be colored, given whether the
// output is a terminal.
func (cfg *Config) UseColor(isTerminal bool) bool {
	switch cfg.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	default:
		return isTerminal
	}
}

func (cfg *Config) YAML() (string, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, "could not encode config")
	}
	return string(out), nil
}
