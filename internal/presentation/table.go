package presentation

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gildedrose/internal/domain/inventory"
	"github.com/zjrosen/gildedrose/internal/ui/styles"
	"github.com/zjrosen/gildedrose/internal/ui/table"
)

// ItemColumns returns the table columns used for inventory rows (ItemDTO).
func ItemColumns() []table.ColumnConfig {
	return []table.ColumnConfig{
		{Key: "name", Header: "Name", MinWidth: 12, Render: func(row any, _ int) string {
			return row.(ItemDTO).Name
		}},
		{Key: "category", Header: "Category", Width: 12, Render: func(row any, _ int) string {
			return row.(ItemDTO).Category
		}, Style: func(row any) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(styles.CategoryColor(categoryOf(row.(ItemDTO))))
		}},
		{Key: "sell_in", Header: "Sell In", Width: 7, Align: lipgloss.Right, Render: func(row any, _ int) string {
			return strconv.Itoa(row.(ItemDTO).SellIn)
		}},
		{Key: "quality", Header: "Quality", Width: 7, Align: lipgloss.Right, Render: func(row any, _ int) string {
			return strconv.Itoa(row.(ItemDTO).Quality)
		}, Style: func(row any) lipgloss.Style {
			item := row.(ItemDTO)
			return lipgloss.NewStyle().Foreground(styles.QualityColor(categoryOf(item), item.Quality))
		}},
	}
}

// ItemTable builds the inventory table for one day.
func ItemTable(day DayDTO, width int) table.Model {
	rows := make([]any, len(day.Items))
	for i, item := range day.Items {
		rows[i] = item
	}
	return table.New(table.TableConfig{
		Columns:      ItemColumns(),
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        fmt.Sprintf("Day %d", day.Day),
		EmptyMessage: "No items",
	}).SetRows(rows).SetWidth(width)
}

func categoryOf(item ItemDTO) inventory.Category {
	c, _ := inventory.ParseCategory(item.Category)
	return c
}

type tableRenderer struct {
	w     io.Writer
	width int
}

func (r *tableRenderer) Start() error {
	return nil
}

func (r *tableRenderer) Day(day DayDTO) error {
	_, err := fmt.Fprintln(r.w, ItemTable(day, r.width).View())
	return err
}

func (r *tableRenderer) Arrival(day int, item ItemDTO) error {
	line := fmt.Sprintf("+ Added new item after day %d: %s (%s)", day, item.Name, item.Category)
	_, err := fmt.Fprintln(r.w, styles.AnnouncementStyle.Render(line))
	return err
}

func (r *tableRenderer) Close() error {
	return nil
}
