package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/gildedrose/internal/log"
)

// LocalConfigPath is the project-local config file checked before the user config.
const LocalConfigPath = ".gildedrose/config.yaml"

// SetDefaults registers every default value with v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("days", defaults.Days)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("banner", defaults.Banner)
	v.SetDefault("inventory", defaults.Inventory)
	v.SetDefault("arrivals", defaults.Arrivals)
	v.SetDefault("log.debug", defaults.Log.Debug)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
}

// Load reads configuration into a Config.
//
// Lookup order when cfgFile is empty:
//  1. .gildedrose/config.yaml (current directory)
//  2. ~/.config/gildedrose/config.yaml (user config)
//
// A missing config file is not an error; defaults apply. Returns the path of
// the file that was read, or "" when none was.
func Load(v *viper.Viper, cfgFile string) (Config, string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(LocalConfigPath); err == nil {
		v.SetConfigFile(LocalConfigPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gildedrose"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}

	used := v.ConfigFileUsed()
	if used != "" {
		log.Info(log.CatConfig, "Loaded config", "path", used)
	}
	return cfg, used, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return out, nil
}
