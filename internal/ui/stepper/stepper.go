// Package stepper provides an interactive view that advances the simulation
// one day per keypress.
package stepper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/gildedrose/internal/domain/inventory"
	"github.com/zjrosen/gildedrose/internal/keys"
	"github.com/zjrosen/gildedrose/internal/log"
	"github.com/zjrosen/gildedrose/internal/presentation"
	"github.com/zjrosen/gildedrose/internal/pubsub"
	"github.com/zjrosen/gildedrose/internal/simulation"
	"github.com/zjrosen/gildedrose/internal/ui/styles"
)

// maxLogLines is how many recent log entries the log panel keeps.
const maxLogLines = 8

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(styles.TitleColor)
	statusStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(styles.StatusSuccessColor)
	errorStyle  = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderDefaultColor).
			Padding(0, 1)
)

// ConfigChangedMsg is sent when the watched config file changes.
type ConfigChangedMsg struct{}

// ReloadFunc rebuilds the simulation options after a config change.
type ReloadFunc func() (simulation.Options, error)

// Model is the stepper state.
type Model struct {
	ctx    context.Context
	opts   simulation.Options
	sim    *simulation.Simulation
	broker *pubsub.Broker[inventory.Event]
	events <-chan pubsub.Event[inventory.Event]
	logs   <-chan pubsub.Event[string]

	changes <-chan struct{}
	reload  ReloadFunc

	keys keys.KeyMap
	help help.Model

	width    int
	selected int
	showLogs bool

	arrivals []string
	logLines []string
	err      error
}

// New creates a stepper over a fresh simulation built from opts. The
// renderer in opts is ignored; the stepper draws its own view.
func New(ctx context.Context, opts simulation.Options) (Model, error) {
	broker := pubsub.NewBroker[inventory.Event]()
	opts.Renderer = nil
	opts.Publisher = broker

	sim, err := simulation.New(opts)
	if err != nil {
		broker.Close()
		return Model{}, err
	}

	return Model{
		ctx:    ctx,
		opts:   opts,
		sim:    sim,
		broker: broker,
		events: broker.Subscribe(ctx),
		logs:   log.Subscribe(ctx),
		keys:   keys.DefaultKeyMap(),
		help:   help.New(),
	}, nil
}

// WithReload restarts the simulation with options from reload each time
// changes receives.
func (m Model) WithReload(changes <-chan struct{}, reload ReloadFunc) Model {
	m.changes = changes
	m.reload = reload
	return m
}

// Close releases the event broker.
func (m Model) Close() {
	m.broker.Close()
}

// Simulation returns the simulation being stepped.
func (m Model) Simulation() *simulation.Simulation {
	return m.sim
}

// Arrivals returns the announcements collected since the last restart.
func (m Model) Arrivals() []string {
	return m.arrivals
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{pubsub.ListenCmd(m.ctx, m.events)}
	if m.logs != nil {
		cmds = append(cmds, pubsub.ListenCmd(m.ctx, m.logs))
	}
	if m.changes != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

func (m Model) waitForChange() tea.Cmd {
	ctx, changes := m.ctx, m.changes
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{}
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pubsub.Event[inventory.Event]:
		if msg.Type == inventory.ItemAddedEvent && msg.Payload.Item != nil {
			m.arrivals = append(m.arrivals, fmt.Sprintf("Added new item: %s (%s)",
				msg.Payload.Item.Name(), msg.Payload.Category))
		}
		return m, pubsub.ListenCmd(m.ctx, m.events)

	case ConfigChangedMsg:
		if m.reload == nil {
			return m, nil
		}
		m.reloadConfig()
		return m, m.waitForChange()

	case pubsub.Event[string]:
		m.logLines = append(m.logLines, strings.TrimSuffix(msg.Payload, "\n"))
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		return m, pubsub.ListenCmd(m.ctx, m.logs)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.step()

	case key.Matches(msg, m.keys.RunAll):
		for !m.sim.Done() && m.err == nil {
			m.step()
		}

	case key.Matches(msg, m.keys.Reset):
		m.restart()

	case key.Matches(msg, m.keys.Up):
		m.selected = max(m.selected-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.selected = min(m.selected+1, max(m.sim.Registry().Len()-1, 0))

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) step() {
	if _, err := m.sim.Step(m.ctx); err != nil {
		if !errors.Is(err, simulation.ErrFinished) {
			m.err = err
			log.ErrorErr(log.CatUI, "Step failed", err, "day", m.sim.Day())
		}
		return
	}
	log.Debug(log.CatUI, "Stepped", "day", m.sim.Day()-1)
}

func (m *Model) reloadConfig() {
	opts, err := m.reload()
	if err != nil {
		m.err = fmt.Errorf("reloading config: %w", err)
		log.ErrorErr(log.CatUI, "Config reload failed", err)
		return
	}
	opts.Renderer = nil
	opts.Publisher = m.broker
	prev := m.opts
	m.opts = opts
	m.restart()
	if m.err != nil {
		m.opts = prev
		return
	}
	log.Info(log.CatUI, "Config reloaded", "days", opts.Days, "items", len(opts.Inventory))
}

func (m *Model) restart() {
	sim, err := simulation.New(m.opts)
	if err != nil {
		m.err = err
		return
	}
	m.sim = sim
	m.selected = 0
	m.arrivals = nil
	m.err = nil
	log.Info(log.CatUI, "Simulation restarted", "run", sim.ID())
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	snapshot := m.sim.Snapshot()
	if m.sim.Done() {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Gilded Rose · %d days", m.sim.Days())))
		b.WriteString("  ")
		b.WriteString(doneStyle.Render("finished"))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Gilded Rose · day %d of %d", snapshot.Day, m.sim.Days())))
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d items", len(snapshot.Items))))
	}
	b.WriteString("\n")

	b.WriteString(presentation.ItemTable(snapshot, m.width).ViewWithSelection(m.selected))
	b.WriteString("\n")

	for _, line := range m.arrivals {
		b.WriteString(styles.AnnouncementStyle.Render(line))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.showLogs {
		b.WriteString(m.renderLogs())
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderLogs() string {
	if len(m.logLines) == 0 {
		return logBoxStyle.Render(statusStyle.Render("No logs to display"))
	}
	lines := m.logLines
	if maxWidth := m.width - 4; maxWidth > 3 {
		lines = make([]string, len(m.logLines))
		for i, l := range m.logLines {
			if ansi.StringWidth(l) > maxWidth {
				l = ansi.Truncate(l, maxWidth, "...")
			}
			lines[i] = l
		}
	}
	return logBoxStyle.Render(strings.Join(lines, "\n"))
}
