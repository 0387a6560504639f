package inventory

import "github.com/zjrosen/gildedrose/internal/log"

// Tick advances every item by one day.
func (r *Registry) Tick() {
	for _, item := range r.items {
		category := r.categories[item.name]

		if category != Legendary {
			item.sellIn--
		}

		switch category {
		case Standard:
			updateStandard(item)
		case Appreciating:
			updateAppreciating(item)
		case EventBased:
			updateEventBased(item)
		case Conjured:
			updateConjured(item)
		case Legendary:
			continue
		}

		item.quality = clamp(item.quality)
	}

	r.day++
	log.Debug(log.CatEngine, "Tick", "day", r.day, "items", len(r.items))
	if r.publisher != nil {
		r.publisher.Publish(DayAdvancedEvent, Event{Day: r.day, Items: len(r.items)})
	}
}

// TickN runs n ticks. n <= 0 does nothing.
func (r *Registry) TickN(n int) {
	for range n {
		r.Tick()
	}
}

func updateStandard(item *Item) {
	decrease(item, 1)
	if item.PastDue() {
		decrease(item, 1)
	}
}

func updateConjured(item *Item) {
	decrease(item, 2)
	if item.PastDue() {
		decrease(item, 2)
	}
}

func updateAppreciating(item *Item) {
	increase(item, 1)
	if item.PastDue() {
		increase(item, 1)
	}
}

// updateEventBased follows the staged curve until the event, then drops to zero.
func updateEventBased(item *Item) {
	switch {
	case item.sellIn < 0:
		item.quality = MinQuality
	case item.sellIn < 6:
		increase(item, 3)
	case item.sellIn < 11:
		increase(item, 2)
	default:
		increase(item, 1)
	}
}

func increase(item *Item, amount int) {
	item.quality = min(MaxQuality, item.quality+amount)
}

func decrease(item *Item, amount int) {
	item.quality = max(MinQuality, item.quality-amount)
}

func clamp(quality int) int {
	return max(MinQuality, min(MaxQuality, quality))
}
