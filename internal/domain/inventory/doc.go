// Package inventory implements the item registry and the daily quality rules.
//
// # Core Types
//
// Item is a named stock record with a sell-by countdown (SellIn) and a
// quality score. Its name never changes after NewItem; the countdown and the
// quality are only ever changed by the Registry's Tick.
//
// Category is the closed set of aging behaviors. A category is derived from
// the item name exactly once, when the item enters a Registry, using the
// precedence order in Markers:
//
//	"Aged Brie"        -> Appreciating
//	"Backstage passes" -> EventBased
//	"Sulfuras"         -> Legendary
//	"Conjured"         -> Conjured
//	(anything else)    -> Standard
//
// # Registry
//
// Registry owns the item records and the name->category mapping. New and
// AddItem are the only ways in, so every item in the sequence always has a
// category entry. Two items with the same name share one entry and the last
// insertion wins.
//
// Tick advances every item by one day:
//
//  1. SellIn decreases by one, except for Legendary items.
//  2. The category rule adjusts Quality using the decremented SellIn.
//  3. Quality is clamped to [MinQuality, MaxQuality], except for Legendary items.
//
// A Registry is not safe for concurrent use. Callers serialize Tick and
// AddItem themselves.
package inventory
