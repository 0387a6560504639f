// Package simulation drives the inventory through a fixed number of days.
//
// Each day the current state is rendered, the registry advances one tick, and
// any items scheduled for that day are added. Days run from 0 through Days
// inclusive, so a 30-day run renders 31 snapshots.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/gildedrose/internal/config"
	"github.com/zjrosen/gildedrose/internal/domain/inventory"
	"github.com/zjrosen/gildedrose/internal/log"
	"github.com/zjrosen/gildedrose/internal/presentation"
	"github.com/zjrosen/gildedrose/internal/pubsub"
	"github.com/zjrosen/gildedrose/internal/tracing"
)

// ErrFinished is returned by Step once every day has run.
var ErrFinished = errors.New("simulation finished")

// Options configures a Simulation.
type Options struct {
	Days      int
	Inventory []config.ItemConfig
	Arrivals  []config.ArrivalConfig

	// Renderer receives every snapshot and arrival. Optional.
	Renderer presentation.Renderer
	// Tracer records a span per run and per day. Optional.
	Tracer trace.Tracer
	// Publisher receives the registry's inventory events. Optional.
	Publisher pubsub.Publisher[inventory.Event]
}

// Simulation is a single run over one registry. It is not safe for concurrent use.
type Simulation struct {
	id       string
	days     int
	day      int
	registry *inventory.Registry
	arrivals map[int][]config.ItemConfig
	renderer presentation.Renderer
	tracer   trace.Tracer
	started  bool
}

// New builds a simulation from opts.
func New(opts Options) (*Simulation, error) {
	if opts.Days < 1 {
		return nil, fmt.Errorf("%w: %d", config.ErrInvalidDays, opts.Days)
	}
	if err := config.ValidateInventory(opts.Inventory); err != nil {
		return nil, err
	}
	if err := config.ValidateArrivals(opts.Arrivals); err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, len(opts.Inventory))
	for i, ic := range opts.Inventory {
		items[i] = inventory.NewItem(ic.Name, ic.SellIn, ic.Quality)
	}

	var regOpts []inventory.Option
	if opts.Publisher != nil {
		regOpts = append(regOpts, inventory.WithPublisher(opts.Publisher))
	}

	arrivals := make(map[int][]config.ItemConfig)
	for _, a := range opts.Arrivals {
		arrivals[a.Day] = append(arrivals[a.Day], a.ItemConfig)
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}

	return &Simulation{
		id:       uuid.NewString(),
		days:     opts.Days,
		registry: inventory.New(items, regOpts...),
		arrivals: arrivals,
		renderer: opts.Renderer,
		tracer:   tracer,
	}, nil
}

// ID returns the run identifier.
func (s *Simulation) ID() string {
	return s.id
}

// Day returns the next day to run.
func (s *Simulation) Day() int {
	return s.day
}

// Days returns the configured number of days.
func (s *Simulation) Days() int {
	return s.days
}

// Done reports whether every day has run.
func (s *Simulation) Done() bool {
	return s.day > s.days
}

// Registry returns the inventory being simulated.
func (s *Simulation) Registry() *inventory.Registry {
	return s.registry
}

// Snapshot returns the current state labelled with the next day to run.
func (s *Simulation) Snapshot() presentation.DayDTO {
	return presentation.FromRegistry(s.day, s.registry)
}

// Run executes every remaining day. The renderer is closed on every return
// path so buffered output is written even when the run is cut short.
func (s *Simulation) Run(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanRun, trace.WithAttributes(
		attribute.String(tracing.AttrRunID, s.id),
		attribute.Int(tracing.AttrDays, s.days),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if s.renderer != nil {
		defer func() {
			if cerr := s.renderer.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("closing renderer: %w", cerr))
			}
		}()
	}

	log.Info(log.CatSim, "Simulation started", "run", s.id, "days", s.days, "items", s.registry.Len())

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("day %d: %w", s.day, err)
		}
		if _, err := s.Step(ctx); err != nil {
			return err
		}
	}

	log.Info(log.CatSim, "Simulation finished", "run", s.id, "items", s.registry.Len())
	return nil
}

// Step runs one day: render, tick, then add the day's arrivals. It returns
// the snapshot rendered before the tick.
func (s *Simulation) Step(ctx context.Context) (presentation.DayDTO, error) {
	if s.Done() {
		return presentation.DayDTO{}, ErrFinished
	}

	day := s.day
	arrivals := s.arrivals[day]
	_, span := s.tracer.Start(ctx, tracing.SpanDay, trace.WithAttributes(
		attribute.String(tracing.AttrRunID, s.id),
		attribute.Int(tracing.AttrDay, day),
		attribute.Int(tracing.AttrItems, s.registry.Len()),
		attribute.Int(tracing.AttrArrivals, len(arrivals)),
	))
	defer span.End()

	if err := s.start(); err != nil {
		return presentation.DayDTO{}, err
	}

	snapshot := s.Snapshot()
	if s.renderer != nil {
		if err := s.renderer.Day(snapshot); err != nil {
			span.RecordError(err)
			return presentation.DayDTO{}, fmt.Errorf("rendering day %d: %w", day, err)
		}
	}

	s.registry.Tick()

	for _, ic := range arrivals {
		item := inventory.NewItem(ic.Name, ic.SellIn, ic.Quality)
		s.registry.AddItem(item)
		category, _ := s.registry.CategoryOf(item.Name())

		span.AddEvent(tracing.EventItemArrived, trace.WithAttributes(
			attribute.String(tracing.AttrItemName, item.Name()),
			attribute.String(tracing.AttrCategory, category.String()),
		))
		if s.renderer != nil {
			if err := s.renderer.Arrival(day, presentation.FromItem(item, category)); err != nil {
				span.RecordError(err)
				return presentation.DayDTO{}, fmt.Errorf("rendering arrival on day %d: %w", day, err)
			}
		}
	}

	s.day++
	log.Debug(log.CatSim, "Day complete", "run", s.id, "day", day, "items", s.registry.Len())
	return snapshot, nil
}

func (s *Simulation) start() error {
	if s.started {
		return nil
	}
	s.started = true
	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.Start(); err != nil {
		return fmt.Errorf("starting renderer: %w", err)
	}
	return nil
}
