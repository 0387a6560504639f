package presentation

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

type encoder interface {
	Encode(v any) error
}

type closingEncoder struct {
	encoder
	close func() error
}

func jsonEncoder(w io.Writer) closingEncoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return closingEncoder{encoder: enc, close: func() error { return nil }}
}

// yamlEncoder writes one YAML document per day, separated by "---".
func yamlEncoder(w io.Writer) closingEncoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return closingEncoder{encoder: enc, close: enc.Close}
}

// structuredRenderer holds each day back until the next one starts so the
// items that arrived after the update can be attached to it.
type structuredRenderer struct {
	enc     closingEncoder
	pending *DayDTO
}

func newStructuredRenderer(enc closingEncoder) *structuredRenderer {
	return &structuredRenderer{enc: enc}
}

func (r *structuredRenderer) Start() error {
	return nil
}

func (r *structuredRenderer) Day(day DayDTO) error {
	if err := r.flush(); err != nil {
		return err
	}
	r.pending = &day
	return nil
}

func (r *structuredRenderer) Arrival(day int, item ItemDTO) error {
	if r.pending == nil || r.pending.Day != day {
		if err := r.flush(); err != nil {
			return err
		}
		r.pending = &DayDTO{Day: day, Items: []ItemDTO{}}
	}
	r.pending.Arrivals = append(r.pending.Arrivals, item)
	return nil
}

func (r *structuredRenderer) Close() error {
	if err := r.flush(); err != nil {
		return err
	}
	return r.enc.close()
}

func (r *structuredRenderer) flush() error {
	if r.pending == nil {
		return nil
	}
	day := r.pending
	r.pending = nil
	return r.enc.Encode(day)
}
