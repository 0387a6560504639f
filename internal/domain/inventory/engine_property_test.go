package inventory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Tick
// ============================================================================

var sampleNames = []string{
	"+5 Dexterity Vest",
	"Elixir of the Mongoose",
	"Aged Brie",
	"Aged Brie Deluxe",
	"Backstage passes to a TAFKAL80ETC concert",
	"Sulfuras, Hand of Ragnaros",
	"Conjured Mana Cake",
	"Conjured Aged Brie",
	"New Magic Wand",
}

func drawItem(t *rapid.T, label string) *Item {
	name := rapid.SampledFrom(sampleNames).Draw(t, label+"-name")
	sellIn := rapid.IntRange(-30, 30).Draw(t, label+"-sellIn")
	if Categorize(name) == Legendary {
		return NewItem(name, sellIn, LegendaryQuality)
	}
	quality := rapid.IntRange(-10, 70).Draw(t, label+"-quality")
	return NewItem(name, sellIn, quality)
}

func drawRegistry(t *rapid.T) *Registry {
	n := rapid.IntRange(0, 12).Draw(t, "items")
	items := make([]*Item, n)
	for i := range items {
		items[i] = drawItem(t, fmt.Sprintf("item-%d", i))
	}
	return New(items)
}

// TestProperty_QualityStaysInBounds verifies every non-Legendary item is within [0, 50] after any tick.
func TestProperty_QualityStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawRegistry(t)
		days := rapid.IntRange(1, 40).Draw(t, "days")

		for range days {
			r.Tick()
			for _, item := range r.Items() {
				if Categorize(item.Name()) == Legendary {
					continue
				}
				require.GreaterOrEqual(t, item.Quality(), MinQuality, "%s", item)
				require.LessOrEqual(t, item.Quality(), MaxQuality, "%s", item)
			}
		}
	})
}

// TestProperty_LegendaryIsFrozen verifies Legendary items never change.
func TestProperty_LegendaryIsFrozen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sellIn := rapid.IntRange(-100, 100).Draw(t, "sellIn")
		quality := rapid.IntRange(-100, 200).Draw(t, "quality")
		item := NewItem("Sulfuras, Hand of Ragnaros", sellIn, quality)
		r := New([]*Item{item})

		r.TickN(rapid.IntRange(1, 60).Draw(t, "days"))

		require.Equal(t, sellIn, item.SellIn())
		require.Equal(t, quality, item.Quality())
	})
}

// TestProperty_SellInCountsDown verifies non-Legendary items lose exactly one day per tick.
func TestProperty_SellInCountsDown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		item := drawItem(t, "item")
		for Categorize(item.Name()) == Legendary {
			item = drawItem(t, "retry")
		}
		start := item.SellIn()
		days := rapid.IntRange(0, 60).Draw(t, "days")

		New([]*Item{item}).TickN(days)

		require.Equal(t, start-days, item.SellIn())
	})
}

// TestProperty_CategoriesAreStable verifies every item keeps exactly one category.
// entry, matching its name, across ticks and late arrivals.
func TestProperty_CategoriesAreStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawRegistry(t)
		before := r.Categories()

		steps := rapid.IntRange(0, 20).Draw(t, "steps")
		for i := range steps {
			if rapid.Bool().Draw(t, fmt.Sprintf("add-%d", i)) {
				r.AddItem(drawItem(t, fmt.Sprintf("late-%d", i)))
			}
			r.Tick()
		}

		cats := r.Categories()
		for name, c := range before {
			require.Equal(t, c, cats[name], "category changed for %q", name)
		}
		for _, item := range r.Items() {
			c, ok := cats[item.Name()]
			require.True(t, ok, "no category for %q", item.Name())
			require.Equal(t, Categorize(item.Name()), c)
		}
	})
}

// referenceTick is an independent formulation of one day for a single item.
func referenceTick(c Category, sellIn, quality int) (int, int) {
	if c == Legendary {
		return sellIn, quality
	}
	sellIn--
	pastDue := sellIn < 0

	var next int
	switch c {
	case EventBased:
		switch {
		case pastDue:
			return sellIn, 0
		case sellIn < 6:
			next = quality + 3
		case sellIn < 11:
			next = quality + 2
		default:
			next = quality + 1
		}
	default:
		rate := map[Category]int{Standard: -1, Conjured: -2, Appreciating: 1}[c]
		next = stepClamped(quality, rate)
		if pastDue {
			next = stepClamped(next, rate)
		}
	}

	if next < MinQuality {
		next = MinQuality
	}
	if next > MaxQuality {
		next = MaxQuality
	}
	return sellIn, next
}

func stepClamped(q, delta int) int {
	q += delta
	if delta > 0 && q > MaxQuality {
		return MaxQuality
	}
	if delta < 0 && q < MinQuality {
		return MinQuality
	}
	return q
}

// TestProperty_MatchesReferenceModel compares Tick with referenceTick for random items.
func TestProperty_MatchesReferenceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		item := drawItem(t, "item")
		c := Categorize(item.Name())
		wantSellIn, wantQuality := referenceTick(c, item.SellIn(), item.Quality())

		New([]*Item{item}).Tick()

		require.Equal(t, wantSellIn, item.SellIn(), "sellIn for %s (%s)", item.Name(), c)
		require.Equal(t, wantQuality, item.Quality(), "quality for %s (%s)", item.Name(), c)
	})
}
