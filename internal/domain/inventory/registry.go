package inventory

import (
	"maps"

	"github.com/zjrosen/gildedrose/internal/log"
	"github.com/zjrosen/gildedrose/internal/pubsub"
)

// Registry holds the ordered items and their categories.
type Registry struct {
	items      []*Item
	categories map[string]Category
	day        int
	publisher  pubsub.Publisher[Event]
}

// Option configures a Registry.
type Option func(*Registry)

// WithPublisher sends item.added and day.advanced events to p.
func WithPublisher(p pubsub.Publisher[Event]) Option {
	return func(r *Registry) {
		r.publisher = p
	}
}

// New creates a registry holding a copy of items, categorizing each one.
// Nil entries are skipped.
func New(items []*Item, opts ...Option) *Registry {
	r := &Registry{
		items:      make([]*Item, 0, len(items)),
		categories: make(map[string]Category, len(items)),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, item := range items {
		if item == nil {
			log.Warn(log.CatInventory, "Skipping nil item")
			continue
		}
		r.insert(item)
	}

	log.Debug(log.CatInventory, "Registry initialized", "items", len(r.items), "categories", len(r.categories))
	return r
}

// Items returns the items in insertion order. The slice is a fresh copy; the
// records are shared with the registry.
func (r *Registry) Items() []*Item {
	out := make([]*Item, len(r.items))
	copy(out, r.items)
	return out
}

// Categories returns a snapshot of the name->category mapping.
func (r *Registry) Categories() map[string]Category {
	return maps.Clone(r.categories)
}

// CategoryOf returns the category recorded for name.
func (r *Registry) CategoryOf(name string) (Category, bool) {
	c, ok := r.categories[name]
	return c, ok
}

// Len returns the number of items.
func (r *Registry) Len() int {
	return len(r.items)
}

// Day returns the number of ticks run so far.
func (r *Registry) Day() int {
	return r.day
}

// AddItem appends item and categorizes it. A nil item is ignored.
func (r *Registry) AddItem(item *Item) {
	if item == nil {
		log.Warn(log.CatInventory, "Ignoring nil item")
		return
	}

	category := r.insert(item)

	log.Info(log.CatInventory, "Added new item", "name", item.name, "category", category, "day", r.day)
	if r.publisher != nil {
		r.publisher.Publish(ItemAddedEvent, Event{
			Day:      r.day,
			Item:     item,
			Category: category,
			Items:    len(r.items),
		})
	}
}

// insert appends item and records its category. Items sharing a name share
// one entry; the last insertion wins.
func (r *Registry) insert(item *Item) Category {
	category := Categorize(item.name)
	r.items = append(r.items, item)
	r.categories[item.name] = category
	return category
}
