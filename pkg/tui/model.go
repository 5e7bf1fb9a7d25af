// Package tui is the interactive journal browser: an entry list on top of
// the same journal/series core the CLI commands use.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/series"
	"tableflip.dev/moodlog/pkg/store"
	"tableflip.dev/moodlog/pkg/timeutil"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	chartStyle = lipgloss.NewStyle().MarginTop(1)
)

type storeChangedMsg struct{}

// Model drives the journal browser.
type Model struct {
	journal     *journal.Journal
	persistence store.Persistence

	list   list.Model
	rng    timeutil.Range
	now    func() time.Time
	events <-chan store.Event

	width  int
	height int
}

// New builds the browser over an already-rehydrated journal. The watch
// channel may be nil when the persistence layer cannot watch.
func New(j *journal.Journal, p store.Persistence, events <-chan store.Event) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(itemsFromEntries(j.List()), delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{
		journal:     j,
		persistence: p,
		list:        l,
		rng:         timeutil.DefaultRange,
		now:         time.Now,
		events:      events,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForStoreChange()
}

// Update handles key, resize, and store-change messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-chartHeight(m.height))
		return m, nil

	case storeChangedMsg:
		// Another process touched the store; rebuild from disk.
		m.journal = journal.New(m.persistence)
		m.list.SetItems(itemsFromEntries(m.journal.List()))
		return m, m.waitForStoreChange()

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.rng = nextRange(m.rng)
			return m, nil
		case "d":
			if item, ok := m.list.SelectedItem().(entryItem); ok {
				m.journal.Delete(item.entry.ID)
				m.list.SetItems(itemsFromEntries(m.journal.List()))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the entry list with the history chart beneath it.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mood Journal"))
	b.WriteString(faintStyle.Render(fmt.Sprintf("  last %d days (r to cycle, d to delete, q to quit)", m.rng.Days())))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString(chartStyle.Render(m.chartView()))
	return b.String()
}

func (m Model) chartView() string {
	w := timeutil.Resolve(m.rng, m.now())
	s := series.Build(m.journal.List(), w)
	if s.Empty() {
		return faintStyle.Render("no entries in range")
	}

	var b strings.Builder
	for i, v := range s.Values {
		b.WriteString(fmt.Sprintf("%s %-10s %d\n", s.Labels[i], strings.Repeat("█", v*2), v))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) waitForStoreChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func nextRange(r timeutil.Range) timeutil.Range {
	switch r {
	case timeutil.RangeWeek:
		return timeutil.RangeMonth
	case timeutil.RangeMonth:
		return timeutil.RangeYear
	default:
		return timeutil.RangeWeek
	}
}

func chartHeight(total int) int {
	// Reserve roughly a third of the screen for the chart pane.
	h := total / 3
	if h < 4 {
		h = 4
	}
	return h
}

func itemsFromEntries(entries []*entry.Entry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}
	return items
}

type entryItem struct {
	entry *entry.Entry
}

func (i entryItem) Title() string {
	symbol, day, _ := i.entry.Row()
	return fmt.Sprintf("%s %s  %s", day, symbol, i.entry.Rating.Label())
}

func (i entryItem) Description() string {
	if i.entry.Notes == "" {
		return faintStyle.Render("no notes")
	}
	return i.entry.Notes
}

func (i entryItem) FilterValue() string {
	return i.entry.Notes
}

// Run starts the browser and blocks until exit.
func Run(ctx context.Context, p store.Persistence) error {
	j := journal.New(p)

	var events <-chan store.Event
	if ch, err := p.Watch(ctx); err == nil {
		events = ch
	}

	program := tea.NewProgram(New(j, p, events), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
