// Package config reads the autowrap configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/coredhcp/coredhcp/logger"
	"github.com/go-viper/mapstructure/v2"
	"github.com/insomniacslk/autowrap/pkg/autowrap"
	"github.com/pelletier/go-toml/v2"
)

var log = logger.GetLogger("config")

// Default values.
const (
	DefaultMaxCharactersPerLine = 40
	DefaultMode                 = autowrap.Wide
)

// Config is the configuration of the wrapping tool.
type Config struct {
	Timing Timing `mapstructure:"timing"`
	Wrap   Wrap   `mapstructure:"wrap"`
}

// Timing holds the subtitle timing and layout constraints.
type Timing struct {
	MaxCharactersPerLine int `mapstructure:"max-characters-per-line"`
}

// Wrap holds the wrapping behaviour.
type Wrap struct {
	Mode autowrap.Mode `mapstructure:"mode"`
	// Workers is the number of text blocks wrapped concurrently, 0 means one
	// per CPU.
	Workers int `mapstructure:"workers"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timing: Timing{MaxCharactersPerLine: DefaultMaxCharactersPerLine},
		Wrap:   Wrap{Mode: DefaultMode},
	}
}

// Load reads the TOML configuration file at path on top of the defaults. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded config from %s: %+v", path, *cfg)
	return cfg, nil
}

// Parse decodes TOML configuration data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	rawCfg := make(map[string]any)
	if err := toml.Unmarshal(data, &rawCfg); err != nil {
		return nil, fmt.Errorf("failed to decode the config file: %w", err)
	}
	if err := normalizeKeys(rawCfg); err != nil {
		return nil, err
	}

	cfg := Default()
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.TextUnmarshallerHookFunc(),
		ErrorUnused: true,
		Result:      cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := d.Decode(rawCfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// normalizeKeys turns the keys of the raw config into "kebab-case", so that
// both max_characters_per_line and Max-Characters-Per-Line are accepted. Two
// keys that normalize to the same name are an error.
func normalizeKeys(cfg map[string]any) error {
	normalized := make(map[string]string, len(cfg))
	for k := range cfg {
		key := strings.ReplaceAll(strings.ToLower(k), "_", "-")
		if other, ok := normalized[key]; ok {
			return fmt.Errorf("duplicate config key '%s': '%s' and '%s'", key, other, k)
		}
		normalized[key] = k
	}
	for key, k := range normalized {
		v := cfg[k]
		if k != key {
			delete(cfg, k)
			cfg[key] = v
		}
		if m, ok := v.(map[string]any); ok {
			if err := normalizeKeys(m); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

// Validate checks that the configuration can be used for wrapping.
func (c *Config) Validate() error {
	if c.Timing.MaxCharactersPerLine < 1 {
		return fmt.Errorf("%w: max-characters-per-line must be at least 1, got %d", autowrap.ErrInvalidArgument, c.Timing.MaxCharactersPerLine)
	}
	if _, err := c.Wrap.Mode.MarshalText(); err != nil {
		return err
	}
	if c.Wrap.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", autowrap.ErrInvalidArgument, c.Wrap.Workers)
	}
	return nil
}

// Options returns the wrapping options for this configuration.
func (c *Config) Options() autowrap.Options {
	return autowrap.Options{
		MaxCPL:  c.Timing.MaxCharactersPerLine,
		Mode:    c.Wrap.Mode,
		Workers: c.Wrap.Workers,
	}
}
