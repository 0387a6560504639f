package inventory

import "strings"

// Category selects the aging rule applied to an item.
type Category int

const (
	Standard Category = iota
	Appreciating
	EventBased
	Legendary
	Conjured
)

func (c Category) String() string {
	switch c {
	case Standard:
		return "Standard"
	case Appreciating:
		return "Appreciating"
	case EventBased:
		return "EventBased"
	case Legendary:
		return "Legendary"
	case Conjured:
		return "Conjured"
	default:
		return "Unknown"
	}
}

// ParseCategory returns the category whose String form is s.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, true
		}
	}
	return Standard, false
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Standard, Appreciating, EventBased, Legendary, Conjured}
}

// Marker pairs a name substring with the category it selects.
type Marker struct {
	Substring string
	Category  Category
}

// markers is ordered by precedence; the first match wins.
var markers = []Marker{
	{Substring: "Aged Brie", Category: Appreciating},
	{Substring: "Backstage passes", Category: EventBased},
	{Substring: "Sulfuras", Category: Legendary},
	{Substring: "Conjured", Category: Conjured},
}

// Markers returns the categorization markers in precedence order.
// Names matching none of them are Standard.
func Markers() []Marker {
	out := make([]Marker, len(markers))
	copy(out, markers)
	return out
}

// Categorize derives the category of an item name. Matching is case-sensitive.
func Categorize(name string) Category {
	for _, m := range markers {
		if strings.Contains(name, m.Substring) {
			return m.Category
		}
	}
	return Standard
}
