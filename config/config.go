// SPDX-License-Identifier: MIT

// Package config resolves routefinder settings from defaults, an optional YAML
// file and the environment. Flags are applied on top by the command itself.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults used when nothing else is configured.
const (
	DefaultSource      = "Atlanta"
	DefaultDestination = "Louisville"
	DefaultDelimiter   = ","
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Environment variable names read by ApplyEnv.
const (
	EnvSource      = "CITY1"
	EnvDestination = "CITY2"
	EnvRouteFile   = "CITY_ROUTE_FILE"
	EnvDelimiter   = "ROUTE_DELIMITER"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
)

var (
	// ErrConfigNotFound is returned when an explicitly named config file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidConfig is returned by Validate and wraps every parse failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config holds the routefinder settings.
type Config struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	// RouteFile is the route list to load; empty selects the built-in sample list.
	RouteFile string `yaml:"route_file"`
	Delimiter string `yaml:"delimiter"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Delimiter:   DefaultDelimiter,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields whose environment variable is set and non-blank.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for name, field := range map[string]*string{
		EnvSource:      &c.Source,
		EnvDestination: &c.Destination,
		EnvRouteFile:   &c.RouteFile,
		EnvDelimiter:   &c.Delimiter,
		EnvLogLevel:    &c.LogLevel,
		EnvLogFormat:   &c.LogFormat,
	} {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			*field = v
		}
	}
}

// Validate checks the fields that cannot be checked later.
// Source and destination are not validated: unknown cities are a query outcome.
func (c Config) Validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("%w: delimiter is empty", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}

	return lvl, nil
}
