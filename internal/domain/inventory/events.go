package inventory

import "github.com/zjrosen/gildedrose/internal/pubsub"

// Event types published by a Registry.
const (
	ItemAddedEvent   pubsub.EventType = "item.added"
	DayAdvancedEvent pubsub.EventType = "day.advanced"
)

// Event is the payload of inventory events.
type Event struct {
	// Day is the number of ticks the registry has run when the event fired.
	Day int
	// Item is set for ItemAddedEvent.
	Item     *Item
	Category Category
	// Items is the inventory size after the event.
	Items int
}
