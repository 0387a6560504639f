package inventory

import "fmt"

// Quality bounds for every category except Legendary.
const (
	MinQuality = 0
	MaxQuality = 50
)

// LegendaryQuality is the customary fixed quality of a Legendary item.
// Legendary quality is never checked or changed, so other values are kept as given.
const LegendaryQuality = 80

// Item is a single stock record.
type Item struct {
	name    string
	sellIn  int
	quality int
}

// NewItem creates an item. Quality is taken as given; an out-of-range value is
// pulled back into range by the next Tick.
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{
		name:    name,
		sellIn:  sellIn,
		quality: quality,
	}
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// SellIn returns the days left before the item is past due. Negative means past due.
func (i *Item) SellIn() int {
	return i.sellIn
}

// Quality returns the current quality score.
func (i *Item) Quality() int {
	return i.quality
}

// PastDue reports whether the sell-by date has passed.
func (i *Item) PastDue() bool {
	return i.sellIn < 0
}

func (i *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.name, i.sellIn, i.quality)
}
