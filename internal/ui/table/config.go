// Package table renders rows of data as an aligned, optionally bordered table.
//
// The table is a pure render component. Callers describe columns with Render
// callbacks, hand over rows and an optional width, and get a string back:
//
//	tbl := table.New(table.TableConfig{
//	    Columns: []table.ColumnConfig{
//	        {Key: "name", Header: "Name", MinWidth: 10, Render: func(row any, w int) string {
//	            return row.(*MyRow).Name
//	        }},
//	        {Key: "qty", Header: "Qty", Width: 5, Align: lipgloss.Right, Render: ...},
//	    },
//	    ShowHeader: true,
//	    ShowBorder: true,
//	})
//	view := tbl.SetRows(rows).SetWidth(80).View()
//
// Selection state is not kept by the table; pass the index to ViewWithSelection.
package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColumnConfig defines a single table column.
//
// Width configuration:
//   - Width: Fixed width in cells (0 = sized to content)
//   - MinWidth: Lower bound when a content-sized column is shrunk to fit
//   - MaxWidth: Upper bound for content-sized columns (0 = no limit)
//
// Render receives the row and the final column width. Content wider than the
// column is truncated with an ellipsis.
type ColumnConfig struct {
	Key      string
	Header   string
	Width    int
	MinWidth int
	MaxWidth int
	Align    lipgloss.Position
	Render   func(row any, width int) string
	// Style, if set, styles each rendered cell of this column.
	Style func(row any) lipgloss.Style
}

// TableConfig defines the complete table configuration.
type TableConfig struct {
	Columns      []ColumnConfig
	ShowHeader   bool
	ShowBorder   bool
	Title        string // Shown above the table when set
	EmptyMessage string // Shown when there are no rows (default: "No data")
	BorderColor  lipgloss.TerminalColor
}

// ValidateConfig reports an error when there are no columns or a column has
// no Render callback.
func ValidateConfig(cfg TableConfig) error {
	if len(cfg.Columns) == 0 {
		return errors.New("table config: at least one column is required")
	}
	for i, col := range cfg.Columns {
		if col.Render == nil {
			if col.Key != "" {
				return fmt.Errorf("table config: column %q has nil Render callback", col.Key)
			}
			return fmt.Errorf("table config: column %d has nil Render callback", i)
		}
	}
	return nil
}
