package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// maxScores is how many results the scoreboard loads per tab.
const maxScores = 100

// scoreTab is one difficulty filter of the scoreboard.
type scoreTab struct {
	title      string
	difficulty string // Empty means every difficulty
}

var scoreTabs = []scoreTab{
	{"All", ""},
	{"Easy", "easy"},
	{"Medium", "medium"},
	{"Hard", "hard"},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results screen.
type ScoreboardModel struct {
	store   *storage.Store
	tab     int
	results []storage.Result
	stats   *storage.Stats
	loadErr error
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	theme   Theme
	width   int
	height  int
	done    bool
}

// NewScoreboardModel creates a scoreboard showing the given difficulty first.
func NewScoreboardModel(store *storage.Store, difficulty string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		theme:  theme,
		width:  width,
		height: height,
	}
	for i, t := range scoreTabs {
		if t.difficulty == difficulty {
			m.tab = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized for the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Level", Width: 7},
		{Title: "Score", Width: 6},
		{Title: "Result", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column.
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.Selected
	t.SetStyles(s)

	return t
}

// load fetches results and stats for the current tab.
func (m *ScoreboardModel) load() {
	m.results, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		difficulty := scoreTabs[m.tab].difficulty
		m.results, m.loadErr = m.store.TopResults(difficulty, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(difficulty)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = resultRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultRow(rank int, r storage.Result) table.Row {
	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	player := r.Player
	if player == "" {
		player = "-"
	}
	return table.Row{
		fmt.Sprintf("#%d", rank),
		player,
		r.Difficulty,
		fmt.Sprintf("%d", r.Score),
		outcome,
		fmt.Sprintf("%.0f%%", r.Accuracy()*100),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(scoreTabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(scoreTabs) - 1) % len(scoreTabs)
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

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(centerText("BATTLESHIP RESULTS", m.width)))
	b.WriteString("\n")

	tabs := make([]string, len(scoreTabs))
	for i, t := range scoreTabs {
		if i == m.tab {
			tabs[i] = m.theme.TabActive.Render(t.title)
		} else {
			tabs[i] = m.theme.TabInactive.Render(t.title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	b.WriteString(centerText(box.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(m.theme.Stats.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m ScoreboardModel) renderTableContent() string {
	switch {
	case m.store == nil:
		return m.theme.Empty.Render("No results database.")
	case m.loadErr != nil:
		return m.theme.Empty.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return m.theme.Empty.Render("No games recorded yet.\nSink a fleet to get on the board!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Games == 0 {
		return ""
	}
	return fmt.Sprintf("Games %d | Wins %d (%.0f%%) | Accuracy %.0f%% | Best %d",
		m.stats.Games, m.stats.Wins, m.stats.WinRate()*100, m.stats.Accuracy()*100, m.stats.HighScore)
}

// centerText centers a block of text within the given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunScoreboard runs the results screen.
func RunScoreboard(store *storage.Store, difficulty string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, difficulty, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
