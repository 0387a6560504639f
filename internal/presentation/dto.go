package presentation

import (
	"github.com/zjrosen/gildedrose/internal/domain/inventory"
)

// ItemDTO represents an item for presentation
type ItemDTO struct {
	Name     string `json:"name" yaml:"name"`
	SellIn   int    `json:"sell_in" yaml:"sell_in"`
	Quality  int    `json:"quality" yaml:"quality"`
	Category string `json:"category" yaml:"category"`
}

// DayDTO is the inventory state rendered before a day's update, plus the items
// that arrived after it.
type DayDTO struct {
	Day      int       `json:"day" yaml:"day"`
	Items    []ItemDTO `json:"items" yaml:"items"`
	Arrivals []ItemDTO `json:"arrivals,omitempty" yaml:"arrivals,omitempty"`
}

// MarkerDTO represents a categorization marker
type MarkerDTO struct {
	Precedence int    `json:"precedence"`
	Substring  string `json:"substring"`
	Category   string `json:"category"`
}

// FromItem converts an item and its category to a DTO
func FromItem(item *inventory.Item, category inventory.Category) ItemDTO {
	return ItemDTO{
		Name:     item.Name(),
		SellIn:   item.SellIn(),
		Quality:  item.Quality(),
		Category: category.String(),
	}
}

// FromRegistry snapshots every item in the registry
func FromRegistry(day int, reg *inventory.Registry) DayDTO {
	items := reg.Items()
	categories := reg.Categories()

	dtos := make([]ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = FromItem(item, categories[item.Name()])
	}
	return DayDTO{Day: day, Items: dtos}
}

// FromMarkers converts the categorization markers, in precedence order, with
// the Standard fallback last
func FromMarkers(markers []inventory.Marker) []MarkerDTO {
	dtos := make([]MarkerDTO, 0, len(markers)+1)
	for i, m := range markers {
		dtos = append(dtos, MarkerDTO{
			Precedence: i + 1,
			Substring:  m.Substring,
			Category:   m.Category.String(),
		})
	}
	return append(dtos, MarkerDTO{
		Precedence: len(markers) + 1,
		Substring:  "",
		Category:   inventory.Standard.String(),
	})
}
