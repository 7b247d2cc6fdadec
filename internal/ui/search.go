package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

func newResultsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 40},
			{Title: "Rhythm", Width: 14},
			{Title: "Phase", Width: 10},
			{Title: "Score", Width: 7},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return t
}

// searchIntent maps a query typed into the search box onto the matching
// action creator. "phase:" and "rhythm:" prefixes select the tagged searches;
// a tag without a value is not a query.
func searchIntent(raw string) (action.Intent, bool) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return action.Intent{}, false
	}
	lower := strings.ToLower(query)
	switch {
	case strings.HasPrefix(lower, "phase:"):
		v := strings.TrimSpace(query[len("phase:"):])
		if v == "" {
			return action.Intent{}, false
		}
		return action.SearchByPhase(v, nil), true
	case strings.HasPrefix(lower, "rhythm:"):
		v := strings.TrimSpace(query[len("rhythm:"):])
		if v == "" {
			return action.Intent{}, false
		}
		return action.SearchByRhythm(v, nil), true
	}
	return action.SearchCuesheets(query, nil), true
}

func resultRows(hits []cuer.Cuesheet) []table.Row {
	rows := make([]table.Row, 0, len(hits))
	for _, c := range hits {
		rows = append(rows, table.Row{
			c.Title,
			c.Rhythm,
			c.PhaseLabel(),
			fmt.Sprintf("%.2f", c.Score),
		})
	}
	return rows
}

func (m *Model) syncResults() {
	m.results.SetRows(resultRows(m.snapshot.Search.SearchResult))
	if n := len(m.snapshot.Search.SearchResult); n > 0 && m.results.Cursor() >= n {
		m.results.SetCursor(n - 1)
	}
}

// selectedCuesheet returns the highlighted search hit.
func (m Model) selectedCuesheet() (cuer.Cuesheet, bool) {
	hits := m.snapshot.Search.SearchResult
	i := m.results.Cursor()
	if i < 0 || i >= len(hits) {
		return cuer.Cuesheet{}, false
	}
	return hits[i], true
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.queryFocused = true
		return m, m.query.Focus()
	case "a", "enter":
		c, ok := m.selectedCuesheet()
		if !ok {
			return m, nil
		}
		m.dialogFilter.Reset()
		m.dialogCursor = 0
		m.apply(action.OpenAddToListDialog(c.ID, c.Title))
		cmds := []tea.Cmd{m.dialogFilter.Focus()}
		if m.snapshot.Playlists.Refresh {
			cmds = append(cmds, m.dispatch(action.ListPlaylists(nil)))
		}
		return m, tea.Batch(cmds...)
	case "o":
		c, ok := m.selectedCuesheet()
		if !ok {
			return m, nil
		}
		return m.openCuesheet(c.ID, c.Title)
	case "R":
		m.rhythmPicking = true
		return m, nil
	case "g", "home":
		m.results.GotoTop()
		return m, nil
	case "G", "end":
		m.results.GotoBottom()
		return m, nil
	}
	if phase, ok := phasePresetForKey(msg.String()); ok {
		return m.searchPhase(phase)
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.queryFocused = false
		m.query.Blur()
		return m, nil
	case "enter":
		in, ok := searchIntent(m.query.Value())
		if !ok {
			return m, nil
		}
		m.queryFocused = false
		m.query.Blur()
		m.lastQuery = strings.TrimSpace(m.query.Value())
		m.savePrefs()
		return m, m.dispatch(in)
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.query.View())
	b.WriteString("\n")
	b.WriteString(m.renderPresets())
	b.WriteString("\n\n")

	if len(m.snapshot.Search.SearchResult) == 0 {
		hint := "No results. Press / to search."
		if m.lastQuery != "" {
			hint = fmt.Sprintf("No cuesheets match %q.", m.lastQuery)
		}
		b.WriteString(styles.MutedText.Render(hint))
		return b.String()
	}

	b.WriteString(m.results.View())
	if c, ok := m.selectedCuesheet(); ok {
		b.WriteString("\n")
		b.WriteString(styles.PhaseStyle(c.Phase).Render(c.PhaseLabel()))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(c.Title))
		if lists := m.playlistsContaining(c.ID); len(lists) > 0 {
			b.WriteString(styles.FaintText.Render("  in "))
			b.WriteString(styles.AccentText.Render(strings.Join(lists, ", ")))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m Model) playlistsContaining(cuesheetID string) []string {
	var names []string
	for _, p := range m.snapshot.Playlists.PlaylistsResult {
		if p.Contains(cuesheetID) {
			names = append(names, p.Name)
		}
	}
	return names
}
