package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// columnWidths sizes every column. Fixed columns keep their Width; the rest
// fit their widest cell within [MinWidth, MaxWidth]. When available > 0 and
// the total is too wide, the widest content-sized column shrinks first.
func columnWidths(cols []ColumnConfig, rows []any, available int) []int {
	widths := make([]int, len(cols))
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := lipgloss.Width(col.Header)
		for _, row := range rows {
			w = max(w, lipgloss.Width(safeRender(col, row, 0)))
		}
		if col.MaxWidth > 0 {
			w = min(w, col.MaxWidth)
		}
		widths[i] = max(w, col.MinWidth, 1)
	}

	if available <= 0 {
		return widths
	}
	for totalWidth(widths) > available {
		widest := -1
		for i, col := range cols {
			if col.Width > 0 || widths[i] <= max(col.MinWidth, 1) {
				continue
			}
			if widest < 0 || widths[i] > widths[widest] {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		widths[widest]--
	}
	return widths
}

// totalWidth is the sum of column widths plus single-space separators.
func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += len(widths) - 1
	}
	return total
}

func renderHeader(cols []ColumnConfig, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = alignText(truncateCell(col.Header, widths[i]), widths[i], col.Align)
	}
	return strings.Join(parts, " ")
}

func renderRow(row any, cols []ColumnConfig, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := alignText(truncateCell(safeRender(col, row, widths[i]), widths[i]), widths[i], col.Align)
		if col.Style != nil {
			cell = col.Style(row).Render(cell)
		}
		parts[i] = cell
	}
	return strings.Join(parts, " ")
}

// safeRender calls the column's Render callback, turning a panic into "?".
func safeRender(col ColumnConfig, row any, width int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = "?"
		}
	}()
	return col.Render(row, width)
}

func truncateCell(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return truncate.String(s, uint(max(width, 0))) //nolint:gosec // width is clamped non-negative
	}
	return truncate.StringWithTail(s, uint(width), ellipsis) //nolint:gosec // width is positive here
}

func alignText(s string, width int, align lipgloss.Position) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + s
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
