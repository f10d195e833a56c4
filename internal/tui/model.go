// Package tui implements the interactive terminal UI for the search engine.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/martinolai/minisearch/internal/engine"
)

// Searcher is the TUI-facing subset of the engine.
type Searcher interface {
	Search(query string, limit int) []engine.SearchResult
	Stats() engine.Stats
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	urlStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	scoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the Bubble Tea model for the interactive search loop.
type Model struct {
	searcher  Searcher
	input     textinput.Model
	viewport  viewport.Model
	results   []engine.SearchResult
	cursor    int
	limit     int
	status    string
	lastQuery string
	ready     bool
}

// New creates a TUI model over the given searcher.
func New(s Searcher, limit int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a query and press Enter (quit to exit)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	stats := s.Stats()
	return Model{
		searcher: s,
		input:    ti,
		viewport: vp,
		limit:    limit,
		status:   fmt.Sprintf("%d documents, %d terms indexed", stats.Documents, stats.Terms),
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header, status, query box, spacer
		vh := msg.Height - reserved - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "quit" || query == "exit" {
				return m, tea.Quit
			}
			if query == "" {
				return m, nil
			}
			m.results = m.searcher.Search(query, m.limit)
			m.cursor = 0
			m.lastQuery = query
			if len(m.results) == 0 {
				m.status = fmt.Sprintf("No results for %q", query)
			} else {
				m.status = fmt.Sprintf("%d results for %q", len(m.results), query)
			}
			m.viewport.SetContent(m.renderResults())
			m.viewport.GotoTop()
			return m, nil
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the full TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("minisearch")
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		if m.lastQuery == "" {
			return summaryStyle.Render("No results yet. Type a query below.")
		}
		return summaryStyle.Render("No matching documents.")
	}
	var b strings.Builder
	for i, res := range m.results {
		rank := fmt.Sprintf("[%d]", i+1)
		if i == m.cursor {
			rank = selectedStyle.Render(rank)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", rank, titleStyle.Render(res.Title)))
		if res.URL != "" {
			b.WriteString("    " + urlStyle.Render(res.URL) + "\n")
		}
		b.WriteString("    " + res.Snippet + "\n")
		b.WriteString("    " + scoreStyle.Render(fmt.Sprintf("Score: %.3f", res.Score)) + "\n\n")
	}
	return b.String()
}
