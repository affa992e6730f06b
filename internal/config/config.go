// Package config provides configuration loading for lineaview.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names probed in the working directory.
const (
	ConfigFileName    = "lineaview.yaml"
	ConfigFileNameAlt = "lineaview.yml"
)

// Default configuration values.
const (
	DefaultSnapshotPath = "lineage.json"
	DefaultPort         = 8431
	DefaultLogLevel     = "info"
)

// Config holds all lineaview configuration options.
type Config struct {
	// SnapshotPath is the lineage snapshot JSON file.
	SnapshotPath string `koanf:"snapshot"`

	// Port is the UI server port.
	Port int `koanf:"port"`

	// Watch reloads the snapshot when the file changes.
	Watch bool `koanf:"watch"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SessionSecret signs the viewport session cookie. A random secret is
	// generated per process when unset.
	SessionSecret string `koanf:"session_secret"`
}

// Load reads configuration from defaults, an optional config file, the
// LINEAVIEW_ environment and the given flag set (nil is allowed).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"snapshot":  DefaultSnapshotPath,
		"port":      DefaultPort,
		"watch":     true,
		"log_level": DefaultLogLevel,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}

	// LINEAVIEW_LOG_LEVEL -> log_level
	envProvider := env.Provider("LINEAVIEW_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LINEAVIEW_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		// --log-level -> log_level
		flagProvider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(flagProvider, nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values no command could accept.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level. Validate has already
// guaranteed it parses.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", s)
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > lineaview.yaml > lineaview.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}
