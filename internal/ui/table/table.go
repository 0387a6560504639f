package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gildedrose/internal/ui/styles"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(styles.TextMutedColor)
	selectedStyle = lipgloss.NewStyle().Background(styles.SelectionBackgroundColor)
	emptyStyle    = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(styles.TitleColor)
)

// Model holds table rendering state.
type Model struct {
	config TableConfig
	rows   []any
	width  int
}

// New creates a table with the given configuration.
// Panics if the configuration is invalid.
func New(cfg TableConfig) Model {
	if err := ValidateConfig(cfg); err != nil {
		panic(err)
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "No data"
	}
	return Model{config: cfg}
}

// SetRows updates the row data and returns a new Model.
func (m Model) SetRows(rows []any) Model {
	m.rows = rows
	return m
}

// SetWidth limits the total rendered width, borders included. 0 means unlimited.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// RowCount returns the number of rows in the table.
func (m Model) RowCount() int {
	return len(m.rows)
}

// View renders the table without selection highlighting.
func (m Model) View() string {
	return m.render(-1)
}

// ViewWithSelection renders the table with the given row highlighted.
// An out-of-range index renders no selection.
func (m Model) ViewWithSelection(selectedIndex int) string {
	return m.render(selectedIndex)
}

func (m Model) render(selectedIndex int) string {
	available := 0
	if m.width > 0 {
		available = m.width
		if m.config.ShowBorder {
			available -= 2
		}
		if available <= 0 {
			return ""
		}
	}

	widths := columnWidths(m.config.Columns, m.rows, available)

	var lines []string
	if m.config.ShowHeader {
		header := renderHeader(m.config.Columns, widths)
		lines = append(lines, headerStyle.Render(header))
	}

	if len(m.rows) == 0 {
		lines = append(lines, emptyStyle.Render(m.config.EmptyMessage))
	}
	for i, row := range m.rows {
		line := renderRow(row, m.config.Columns, widths)
		if i == selectedIndex {
			line = selectedStyle.Render(padRight(line, totalWidth(widths)))
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")
	if m.config.ShowBorder {
		borderColor := m.config.BorderColor
		if borderColor == nil {
			borderColor = styles.BorderDefaultColor
		}
		content = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Render(content)
	}

	if m.config.Title != "" {
		content = titleStyle.Render(m.config.Title) + "\n" + content
	}
	return content
}
