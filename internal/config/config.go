package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const DefaultFilename = "seqx.yaml"

type Config struct {
	Log    Log    `yaml:"log"`
	Random Random `yaml:"random"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Dict("log", c.Log.ToDict()).
		Dict("random", c.Random.ToDict())
}

func (c *Config) setDefaults() {
	c.Log.setDefaults()
}

func (c *Config) Validate() error {
	if err := c.Log.validate(); nil != err {
		return fmt.Errorf("log config validation failed: %v", err)
	}

	return nil
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Log) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("level", c.Level).
		Str("format", c.Format)
}

func (c *Log) setDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}

	if c.Format == "" {
		c.Format = "auto"
	}
}

func (c *Log) validate() error {
	if !slices.Contains([]string{"trace", "debug", "info", "warn", "error"}, c.Level) {
		return fmt.Errorf("level must be one of: trace, debug, info, warn, error, got: %s", c.Level)
	}

	if !slices.Contains([]string{"auto", "json", "pretty"}, c.Format) {
		return fmt.Errorf("format must be 'auto', 'json' or 'pretty', got: %s", c.Format)
	}

	return nil
}

// Random configures the generator handed to random and shuffle. A zero Seed
// leaves the library to seed a fresh generator per call.
type Random struct {
	Seed uint64 `yaml:"seed"`
}

func (c *Random) ToDict() *zerolog.Event {
	return zerolog.Dict().Uint64("seed", c.Seed)
}

func Default() *Config {
	var conf Config
	conf.setDefaults()

	return &conf
}

// Load reads filename, or DefaultFilename when filename is empty. A missing
// default file is not an error: the defaults are returned instead.
func Load(filename string) (*Config, error) {
	path := lo.Ternary(len(filename) > 0, filename, DefaultFilename)

	data, err := os.ReadFile(path)
	if nil != err {
		if len(filename) == 0 && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); nil != err {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	conf.setDefaults()

	if err := conf.Validate(); nil != err {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &conf, nil
}
