package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ATPOINT_"

// Format is a configuration file format.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath selects the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Config is the atpoint configuration.
type Config struct {
	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`

	// LogFormat is console or json.
	LogFormat string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`

	// DefaultTrigger is the key the default action is bound to.
	DefaultTrigger string `toml:"default_trigger" yaml:"default_trigger" env:"DEFAULT_TRIGGER"`

	// Detectors lists the enabled kinds in precedence order. Empty means
	// all kinds in the built-in order.
	Detectors []string `toml:"detectors" yaml:"detectors" env:"DETECTORS" envSeparator:","`

	// Sticky names additional sticky actions.
	Sticky []string `toml:"sticky" yaml:"sticky" env:"STICKY" envSeparator:","`

	// Keys maps a map name to trigger specs and the actions they run.
	Keys map[string]map[string]string `toml:"keys" yaml:"keys"`

	// Scripts lists Lua files defining actions.
	Scripts []string `toml:"scripts" yaml:"scripts" env:"SCRIPTS" envSeparator:","`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:       "warn",
		LogFormat:      "console",
		DefaultTrigger: "RET",
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults with overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if fileCfg != nil {
			cfg = fileCfg
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the configuration file at path over the defaults.
// It returns nil, nil when the file does not exist.
func LoadFile(path string) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data, format)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes data over the defaults. source names the data in errors.
func Parse(source string, data []byte, format Format) (*Config, error) {
	cfg := Default()

	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		var serr *toml.StrictMissingError
		switch {
		case errors.As(err, &derr):
			perr.Line, perr.Column = derr.Position()
		case errors.As(err, &serr) && len(serr.Errors) > 0:
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Message = "unknown setting " + strings.Join(serr.Errors[0].Key(), ".")
		}
		return nil, perr
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with ATPOINT_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Binding is one entry of the keys section.
type Binding struct {
	Map    string
	Spec   string
	Action string
}

// Bindings returns the keys section sorted by map and trigger.
func (c *Config) Bindings() []Binding {
	var out []Binding
	for m, keys := range c.Keys {
		for spec, action := range keys {
			out = append(out, Binding{Map: m, Spec: spec, Action: action})
		}
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if n := strings.Compare(a.Map, b.Map); n != 0 {
			return n
		}
		return strings.Compare(a.Spec, b.Spec)
	})
	return out
}

// ScriptPaths returns Scripts with "~" expanded and relative paths
// resolved against the configuration file's directory.
func (c *Config) ScriptPaths() []string {
	out := make([]string, len(c.Scripts))
	for i, p := range c.Scripts {
		out[i] = c.resolve(p)
	}
	return out
}

func (c *Config) resolve(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	if filepath.IsAbs(p) || c.Path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.Path), p)
}
