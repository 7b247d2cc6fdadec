package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

// filterPlaylists ranks playlists whose names fuzzily match filter. An empty
// filter keeps every playlist in its original order.
func filterPlaylists(lists []cuer.Playlist, filter string) []cuer.Playlist {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return lists
	}
	names := make([]string, len(lists))
	for i, p := range lists {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindFold(filter, names)
	sort.Stable(ranks)

	out := make([]cuer.Playlist, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, lists[r.OriginalIndex])
	}
	return out
}

func (m Model) dialogMatches() []cuer.Playlist {
	return filterPlaylists(m.snapshot.Playlists.PlaylistsResult, m.dialogFilter.Value())
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	matches := m.dialogMatches()
	switch msg.String() {
	case "esc":
		m.dialogFilter.Blur()
		m.apply(action.CloseAddToListDialog())
		return m, nil
	case "up", "ctrl+p":
		m.dialogCursor = max(0, m.dialogCursor-1)
		return m, nil
	case "down", "ctrl+n":
		m.dialogCursor = min(max(0, len(matches)-1), m.dialogCursor+1)
		return m, nil
	case "enter":
		if m.dialogCursor >= len(matches) {
			return m, nil
		}
		target := m.snapshot.Search.Target
		p := matches[m.dialogCursor]
		m.dialogFilter.Blur()
		m.apply(action.CloseAddToListDialog())
		if p.Contains(target.ID) {
			return m, nil
		}
		return m, m.dispatch(action.AddToPlaylist(p.ID, target.ID, nil))
	}

	var cmd tea.Cmd
	m.dialogFilter, cmd = m.dialogFilter.Update(msg)
	m.dialogCursor = clamp(m.dialogCursor, len(m.dialogMatches()))
	return m, cmd
}

func (m Model) renderDialog() string {
	styles := m.theme.Styles()
	target := m.snapshot.Search.Target

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Add to playlist"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(truncate(target.Title, 50)))
	b.WriteString("\n\n")
	b.WriteString(m.dialogFilter.View())
	b.WriteString("\n\n")

	matches := m.dialogMatches()
	switch {
	case len(m.snapshot.Playlists.PlaylistsResult) == 0:
		b.WriteString(styles.MutedText.Render("No playlists. Create one from the playlists view."))
	case len(matches) == 0:
		b.WriteString(styles.MutedText.Render("No playlist matches the filter."))
	}
	for i, p := range matches {
		line := truncate(p.Name, 40)
		if p.Contains(target.ID) {
			line += " (added)"
		}
		if i == m.dialogCursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d of %d  enter add  esc cancel", len(matches), len(m.snapshot.Playlists.PlaylistsResult))))

	box := styles.Dialog.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
