// Package config provides configuration types, defaults and validation for gildedrose.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/zjrosen/gildedrose/internal/log"
)

// Output formats understood by the presentation layer.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every valid output format.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML}

// Tracing exporters.
var Exporters = []string{"none", "stdout", "file", "otlp"}

// DefaultDays is the number of simulated days when none is given.
const DefaultDays = 30

// Validation errors
var (
	ErrInvalidDays     = errors.New("days must be a positive integer")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrMissingName     = errors.New("name is required")
	ErrInvalidArrival  = errors.New("arrival day must not be negative")
	ErrUnknownExporter = errors.New("unknown tracing exporter")
)

// ItemConfig is one seed inventory entry.
type ItemConfig struct {
	Name    string `mapstructure:"name" yaml:"name"`
	SellIn  int    `mapstructure:"sell_in" yaml:"sell_in"`
	Quality int    `mapstructure:"quality" yaml:"quality"`
}

// ArrivalConfig schedules an item to be added after the tick of the given day.
type ArrivalConfig struct {
	Day        int `mapstructure:"day" yaml:"day"`
	ItemConfig `mapstructure:",squash" yaml:",inline"`
}

// LogConfig controls debug logging.
type LogConfig struct {
	Debug bool   `mapstructure:"debug" yaml:"debug"`
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"` // debug (default), info, warn, error
}

// TracingConfig holds distributed tracing settings.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	Exporter     string  `mapstructure:"exporter" yaml:"exporter"`           // none, stdout, file (default), otlp
	FilePath     string  `mapstructure:"file_path" yaml:"file_path"`         // required for the file exporter
	OTLPEndpoint string  `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"` // host:port of an OTLP gRPC collector
	SampleRate   float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	ServiceName  string  `mapstructure:"service_name" yaml:"service_name"`
}

// Config holds all configuration options for gildedrose.
type Config struct {
	Days      int             `mapstructure:"days" yaml:"days"`
	Format    string          `mapstructure:"format" yaml:"format"`
	Banner    bool            `mapstructure:"banner" yaml:"banner"`
	Inventory []ItemConfig    `mapstructure:"inventory" yaml:"inventory"`
	Arrivals  []ArrivalConfig `mapstructure:"arrivals" yaml:"arrivals"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
}

// DefaultInventory returns the stock the shop opens with.
func DefaultInventory() []ItemConfig {
	return []ItemConfig{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: "Aged Brie", SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80},
		{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 15, Quality: 20},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
	}
}

// DefaultArrivals returns the late deliveries added during the default run.
func DefaultArrivals() []ArrivalConfig {
	return []ArrivalConfig{
		{Day: 3, ItemConfig: ItemConfig{Name: "Aged Brie Deluxe", SellIn: 5, Quality: 10}},
		{Day: 5, ItemConfig: ItemConfig{Name: "New Magic Wand", SellIn: 10, Quality: 30}},
	}
}

// DefaultTracesFilePath returns the default trace file under the user config dir.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gildedrose", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "gildedrose", "traces", "traces.jsonl")
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Days:      DefaultDays,
		Format:    FormatText,
		Banner:    true,
		Inventory: DefaultInventory(),
		Arrivals:  DefaultArrivals(),
		Log: LogConfig{
			Debug: false,
			File:  "debug.log",
			Level: "debug",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
			ServiceName:  "gildedrose",
		},
	}
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if cfg.Days < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDays, cfg.Days)
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return err
	}
	if err := ValidateInventory(cfg.Inventory); err != nil {
		return err
	}
	if err := ValidateArrivals(cfg.Arrivals); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w %q (valid: %v)", ErrUnknownFormat, format, Formats)
	}
	return nil
}

// ValidateInventory checks the seed items. An empty inventory is valid.
func ValidateInventory(items []ItemConfig) error {
	for i, item := range items {
		if item.Name == "" {
			return fmt.Errorf("inventory %d: %w", i, ErrMissingName)
		}
	}
	return nil
}

// ValidateArrivals checks the late-arrival schedule.
func ValidateArrivals(arrivals []ArrivalConfig) error {
	for i, a := range arrivals {
		if a.Name == "" {
			return fmt.Errorf("arrival %d: %w", i, ErrMissingName)
		}
		if a.Day < 0 {
			return fmt.Errorf("arrival %d: %w", i, ErrInvalidArrival)
		}
	}
	return nil
}

// ValidateTracing checks tracing settings. Disabled tracing is always valid.
func ValidateTracing(tracing TracingConfig) error {
	if !tracing.Enabled {
		return nil
	}
	if tracing.Exporter != "" && !slices.Contains(Exporters, tracing.Exporter) {
		return fmt.Errorf("%w %q", ErrUnknownExporter, tracing.Exporter)
	}
	if tracing.SampleRate < 0 || tracing.SampleRate > 1 {
		return fmt.Errorf("tracing sample_rate must be between 0 and 1, got %v", tracing.SampleRate)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written for new installs.
func DefaultConfigTemplate() string {
	return `# gildedrose configuration

# Number of simulated days (the CLI argument overrides this)
days: 30

# Output format: text, table, json, yaml
format: text

# Print the opening banner in text format
banner: true

# Stock at day 0
inventory:
  - name: "+5 Dexterity Vest"
    sell_in: 10
    quality: 20
  - name: "Aged Brie"
    sell_in: 2
    quality: 0
  - name: "Elixir of the Mongoose"
    sell_in: 5
    quality: 7
  - name: "Sulfuras, Hand of Ragnaros"
    sell_in: 0
    quality: 80
  - name: "Backstage passes to a TAFKAL80ETC concert"
    sell_in: 15
    quality: 20
  - name: "Conjured Mana Cake"
    sell_in: 3
    quality: 6

# Items delivered after the given day's update
arrivals:
  - day: 3
    name: "Aged Brie Deluxe"
    sell_in: 5
    quality: 10
  - day: 5
    name: "New Magic Wand"
    sell_in: 10
    quality: 30

log:
  debug: false
  file: debug.log
  level: debug

# Tracing configuration
# tracing:
#   enabled: true
#   exporter: file
#   file_path: ~/.config/gildedrose/traces/traces.jsonl
#
# Example: Send traces to an OTLP collector
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: collector.internal:4317
#   sample_rate: 0.1
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
