// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gildedrose/internal/domain/inventory"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, headers
	TitleColor       = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#89B4FA"}

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#313244"}

	// Category colors (Catppuccin)
	CategoryStandardColor     = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"} // text
	CategoryAppreciatingColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // yellow
	CategoryEventBasedColor   = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	CategoryLegendaryColor    = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	CategoryConjuredColor     = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"} // teal

	AnnouncementStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	DayHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	HelpStyle         = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// CategoryColor returns the display color for a category.
func CategoryColor(c inventory.Category) lipgloss.AdaptiveColor {
	switch c {
	case inventory.Appreciating:
		return CategoryAppreciatingColor
	case inventory.EventBased:
		return CategoryEventBasedColor
	case inventory.Legendary:
		return CategoryLegendaryColor
	case inventory.Conjured:
		return CategoryConjuredColor
	default:
		return CategoryStandardColor
	}
}

// QualityColor shades a quality score: red at the floor, green at the ceiling.
func QualityColor(c inventory.Category, quality int) lipgloss.TerminalColor {
	switch {
	case c == inventory.Legendary:
		return CategoryLegendaryColor
	case quality <= inventory.MinQuality:
		return StatusErrorColor
	case quality >= inventory.MaxQuality:
		return StatusSuccessColor
	case quality < 10:
		return StatusWarningColor
	default:
		return TextPrimaryColor
	}
}
