package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grapplecore/internal/storage"
)

// maxRuns is how many ledger rows the history view loads.
const maxRuns = 100

// RunSource reads the run ledger.
type RunSource interface {
	RecentRuns(limit int) ([]storage.RunRecord, error)
	Stats() (*storage.RunStats, error)
}

// RunHistoryKeyMap defines the key bindings for the run history view.
type RunHistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunHistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunHistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultRunHistoryKeyMap returns default key bindings.
func DefaultRunHistoryKeyMap() RunHistoryKeyMap {
	return RunHistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunHistoryModel is the Bubble Tea model for browsing finished lives.
type RunHistoryModel struct {
	source   RunSource
	runs     []storage.RunRecord
	stats    *storage.RunStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunHistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunHistoryModel creates the history view and loads the ledger.
func NewRunHistoryModel(source RunSource, width, height int) RunHistoryModel {
	m := RunHistoryModel{
		source: source,
		keys:   DefaultRunHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunHistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Outcome", Width: 9},
		{Title: "Cause", Width: 8},
		{Title: "Turns", Width: 6},
		{Title: "Amber", Width: 6},
		{Title: "Life", Width: 5},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // title, stats, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats from the source.
func (m *RunHistoryModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	runs, err := m.source.RecentRuns(maxRuns)
	if err != nil {
		m.loadErr = err
	} else {
		m.runs = runs
	}

	stats, err := m.source.Stats()
	if err != nil {
		m.loadErr = err
	} else {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *RunHistoryModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats ledger records as table rows.
func runRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			string(r.Outcome),
			cause,
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Amber),
			fmt.Sprintf("%d", r.Life),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the history model.
func (m RunHistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m RunHistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m RunHistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("GRAPPLECORE RUNS"))
	b.WriteString("\n\n")

	b.WriteString(FormatStats(m.stats))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table, an error, or an empty message.
func (m RunHistoryModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the run ledger:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a life to fill the ledger!")
	}
	return m.table.View()
}

// FormatStats renders aggregate ledger statistics on a few plain lines.
func FormatStats(s *storage.RunStats) string {
	if s == nil || s.Runs == 0 {
		return "Runs: 0"
	}

	best := "-"
	if s.BestTurns > 0 {
		best = fmt.Sprintf("%d turns", s.BestTurns)
	}
	line := fmt.Sprintf("Runs: %d  Escapes: %d  Deaths: %d  Best escape: %s  Most amber: %d",
		s.Runs, s.Escapes, s.Deaths, best, s.AmberHeld)

	if len(s.DeathsByCause) == 0 {
		return line
	}

	causes := make([]string, 0, len(s.DeathsByCause))
	for c := range s.DeathsByCause {
		causes = append(causes, c)
	}
	sort.Strings(causes)

	parts := make([]string, len(causes))
	for i, c := range causes {
		parts[i] = fmt.Sprintf("%s %d", c, s.DeathsByCause[c])
	}
	return line + "\nDeaths by cause: " + strings.Join(parts, ", ")
}

// ShowRunHistory shows the history view until the user quits.
func ShowRunHistory(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewRunHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
