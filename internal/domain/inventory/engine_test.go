package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return New([]*Item{
		NewItem("+5 Dexterity Vest", 10, 20),
		NewItem("Aged Brie", 10, 20),
		NewItem("Elixir of the Mongoose", 5, 7),
		NewItem("Sulfuras, Hand of Ragnaros", 10, 80),
		NewItem("Backstage passes to a TAFKAL80ETC concert", 15, 20),
		NewItem("Conjured Mana Cake", 10, 20),
	})
}

func itemNamed(t *testing.T, r *Registry, name string) *Item {
	t.Helper()
	for _, item := range r.Items() {
		if strings.Contains(item.Name(), name) {
			return item
		}
	}
	require.FailNow(t, "item not found", name)
	return nil
}

// tickOne runs a single tick over a registry holding only the given item.
func tickOne(name string, sellIn, quality int) *Item {
	item := NewItem(name, sellIn, quality)
	New([]*Item{item}).Tick()
	return item
}

func TestTick_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		item        string
		sellIn      int
		quality     int
		wantSellIn  int
		wantQuality int
	}{
		{"standard before sell-by", "+5 Dexterity Vest", 10, 20, 9, 19},
		{"standard crosses sell-by", "+5 Dexterity Vest", 0, 20, -1, 18},
		{"standard long past due", "Elixir of the Mongoose", -5, 20, -6, 18},
		{"appreciating before sell-by", "Aged Brie", 10, 20, 9, 21},
		{"appreciating crosses sell-by", "Aged Brie", 0, 20, -1, 22},
		{"legendary unchanged", "Sulfuras, Hand of Ragnaros", 10, 80, 10, 80},
		{"legendary past due unchanged", "Sulfuras, Hand of Ragnaros", -1, 80, -1, 80},
		{"event far out", "Backstage passes to a TAFKAL80ETC concert", 15, 20, 14, 21},
		{"event at eleven", "Backstage passes to a TAFKAL80ETC concert", 12, 20, 11, 21},
		{"event ten days", "Backstage passes to a TAFKAL80ETC concert", 11, 20, 10, 22},
		{"event within ten", "Backstage passes to a TAFKAL80ETC concert", 10, 20, 9, 22},
		{"event six days", "Backstage passes to a TAFKAL80ETC concert", 7, 20, 6, 22},
		{"event five days", "Backstage passes to a TAFKAL80ETC concert", 6, 20, 5, 23},
		{"event within five", "Backstage passes to a TAFKAL80ETC concert", 5, 20, 4, 23},
		{"event day of", "Backstage passes to a TAFKAL80ETC concert", 1, 20, 0, 23},
		{"event after concert", "Backstage passes to a TAFKAL80ETC concert", 0, 49, -1, 0},
		{"event capped", "Backstage passes to a TAFKAL80ETC concert", 5, 49, 4, 50},
		{"conjured before sell-by", "Conjured Mana Cake", 10, 20, 9, 18},
		{"conjured crosses sell-by", "Conjured Mana Cake", 0, 20, -1, 16},
		{"conjured floor", "Conjured Mana Cake", 0, 3, -1, 0},
		{"appreciating ceiling", "Aged Brie", 10, 50, 9, 50},
		{"appreciating ceiling past due", "Aged Brie", 0, 49, -1, 50},
		{"standard floor", "+5 Dexterity Vest", 10, 0, 9, 0},
		{"standard floor past due", "+5 Dexterity Vest", 0, 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tickOne(tt.item, tt.sellIn, tt.quality)
			require.Equal(t, tt.wantSellIn, item.SellIn(), "sellIn")
			require.Equal(t, tt.wantQuality, item.Quality(), "quality")
		})
	}
}

func TestTick_OutOfRangeQualityIsClamped(t *testing.T) {
	tests := []struct {
		name        string
		item        string
		quality     int
		wantQuality int
	}{
		{"standard above ceiling", "+5 Dexterity Vest", 70, 50},
		{"standard below floor", "+5 Dexterity Vest", -10, 0},
		{"appreciating above ceiling", "Aged Brie", 60, 50},
		{"event below floor", "Backstage passes to a TAFKAL80ETC concert", -4, 0},
		{"conjured above ceiling", "Conjured Mana Cake", 99, 50},
		{"legendary not clamped", "Sulfuras, Hand of Ragnaros", 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tickOne(tt.item, 20, tt.quality)
			require.Equal(t, tt.wantQuality, item.Quality())
		})
	}
}

func TestTick_UpdatesSharedRecords(t *testing.T) {
	r := newTestRegistry()
	vest := itemNamed(t, r, "+5 Dexterity Vest")

	r.Tick()

	require.Equal(t, 9, vest.SellIn())
	require.Equal(t, 19, vest.Quality())
}

func TestTick_NewItemsAreIncluded(t *testing.T) {
	r := newTestRegistry()
	r.AddItem(NewItem("New Magic Wand", 10, 30))

	r.Tick()

	wand := itemNamed(t, r, "New Magic Wand")
	require.Equal(t, 9, wand.SellIn())
	require.Equal(t, 29, wand.Quality())
}

func TestTick_LateArrivalMatchesInitialItem(t *testing.T) {
	early := New([]*Item{NewItem("Backstage passes A", 12, 10)})

	late := New(nil)
	late.Tick()
	late.Tick()
	late.AddItem(NewItem("Backstage passes A", 12, 10))

	early.TickN(14)
	late.TickN(14)

	require.Equal(t, early.Items()[0].SellIn(), late.Items()[0].SellIn())
	require.Equal(t, early.Items()[0].Quality(), late.Items()[0].Quality())
}

func TestTickN(t *testing.T) {
	r := New([]*Item{NewItem("Aged Brie", 2, 0)})

	r.TickN(0)
	require.Equal(t, 0, r.Day())

	r.TickN(4)
	brie := r.Items()[0]
	require.Equal(t, 4, r.Day())
	require.Equal(t, -2, brie.SellIn())
	// +1, +1, +2, +2
	require.Equal(t, 6, brie.Quality())
}

func TestTick_EventBasedFullCurve(t *testing.T) {
	pass := NewItem("Backstage passes to a TAFKAL80ETC concert", 15, 20)
	r := New([]*Item{pass})

	// 4 days at +1 (sellIn 14..11), 5 at +2 (10..6), 6 at +3 (5..0): 20+4+10+18 = 52 -> capped at 50
	r.TickN(15)
	require.Equal(t, 0, pass.SellIn())
	require.Equal(t, 50, pass.Quality())

	r.Tick()
	require.Equal(t, -1, pass.SellIn())
	require.Equal(t, 0, pass.Quality())

	r.Tick()
	require.Equal(t, 0, pass.Quality())
}
