// Package presentation renders simulation state as text, tables, JSON or YAML.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zjrosen/gildedrose/internal/config"
)

// Banner is printed once before the first day in text format.
const Banner = "OMGHAI!"

// Renderer writes the state of each simulated day.
// Day is called before the day's update; Arrival after it, for each item added.
type Renderer interface {
	Start() error
	Day(day DayDTO) error
	Arrival(day int, item ItemDTO) error
	Close() error
}

// Options tune renderer output.
type Options struct {
	Banner bool
	Width  int // table format only; 0 means unlimited
}

// NewRenderer returns the renderer for format.
func NewRenderer(format string, w io.Writer, opts Options) (Renderer, error) {
	switch format {
	case config.FormatText:
		return &textRenderer{w: w, banner: opts.Banner}, nil
	case config.FormatTable:
		return &tableRenderer{w: w, width: opts.Width}, nil
	case config.FormatJSON:
		return newStructuredRenderer(jsonEncoder(w)), nil
	case config.FormatYAML:
		return newStructuredRenderer(yamlEncoder(w)), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownFormat, format)
	}
}

// Formatter handles one-shot output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatMarkers formats the categorization markers as JSON
func (f *Formatter) FormatMarkers(markers []MarkerDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(markers)
}

// FormatYAML writes pre-rendered YAML as is
func (f *Formatter) FormatYAML(doc []byte) error {
	_, err := f.writer.Write(doc)
	return err
}
