package tracing

// Span names.
const (
	SpanRun = "simulation.run"
	SpanDay = "simulation.day"
)

// Span attribute keys.
const (
	AttrRunID    = "run.id"
	AttrDays     = "run.days"
	AttrDay      = "day"
	AttrItems    = "items"
	AttrArrivals = "arrivals"
	AttrItemName = "item.name"
	AttrCategory = "item.category"
)

// Span event names.
const (
	EventItemArrived = "item.arrived"
)
