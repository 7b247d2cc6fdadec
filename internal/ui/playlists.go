package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
)

// showPlaylists switches to the list and fetches it when stale.
func (m Model) showPlaylists() (tea.Model, tea.Cmd) {
	m.currentView = ViewPlaylists
	if m.snapshot.Playlists.Refresh {
		return m, m.dispatch(action.ListPlaylists(nil))
	}
	return m, nil
}

func (m Model) selectedPlaylist() (cuer.Playlist, bool) {
	lists := m.snapshot.Playlists.PlaylistsResult
	if m.playlistCursor < 0 || m.playlistCursor >= len(lists) {
		return cuer.Playlist{}, false
	}
	return lists[m.playlistCursor], true
}

func (m Model) handlePlaylistsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Playlists.PlaylistsResult)
	switch msg.String() {
	case "esc":
		m.currentView = ViewSearch
	case "k", "up":
		m.playlistCursor = max(0, m.playlistCursor-1)
	case "j", "down":
		m.playlistCursor = min(max(0, count-1), m.playlistCursor+1)
	case "g", "home":
		m.playlistCursor = 0
	case "G", "end":
		m.playlistCursor = max(0, count-1)
	case "enter":
		if p, ok := m.selectedPlaylist(); ok {
			m.detailID = p.ID
			m.detailCursor = 0
			m.currentView = ViewPlaylistDetail
		}
	case "n":
		m.creating = true
		m.createName.SetValue(m.snapshot.Playlists.CreateForm.Name)
		return m, m.createName.Focus()
	case "d":
		if p, ok := m.selectedPlaylist(); ok {
			m.pendingDelete = p.ID
		}
	case "r":
		return m, m.dispatch(action.ListPlaylists(nil))
	}
	return m, nil
}

// handleCreateKey edits the draft name. Every keystroke is echoed into the
// store so the draft survives view switches.
func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		m.createName.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.createName.Value())
		if name == "" {
			return m, nil
		}
		return m, m.dispatch(action.CreatePlaylist(name, nil))
	}

	var cmd tea.Cmd
	m.createName, cmd = m.createName.Update(msg)
	if m.createName.Value() != m.snapshot.Playlists.CreateForm.Name {
		m.apply(action.CreatePlaylistName(m.createName.Value()))
	}
	return m, cmd
}

func (m Model) handleDeleteConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.pendingDelete = ""
	switch msg.String() {
	case "y", "Y":
		return m, m.dispatch(action.DeletePlaylist(id, nil))
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := m.snapshot.PlaylistByID(m.detailID)
	count := len(p.Cuesheets)
	switch msg.String() {
	case "esc":
		m.currentView = ViewPlaylists
	case "k", "up":
		m.detailCursor = max(0, m.detailCursor-1)
	case "j", "down":
		m.detailCursor = min(max(0, count-1), m.detailCursor+1)
	case "g", "home":
		m.detailCursor = 0
	case "G", "end":
		m.detailCursor = max(0, count-1)
	case "x":
		if ok && m.detailCursor < count {
			ref := p.Cuesheets[m.detailCursor]
			return m, m.dispatch(action.RemoveFromPlaylist(p.ID, ref.ID, nil))
		}
	case "o", "enter":
		if ok && m.detailCursor < count {
			ref := p.Cuesheets[m.detailCursor]
			return m.openCuesheet(ref.ID, ref.Title)
		}
	case "r":
		return m, m.dispatch(action.ListPlaylists(nil))
	}
	return m, nil
}

func (m *Model) clampCursors() {
	lists := m.snapshot.Playlists.PlaylistsResult
	m.playlistCursor = clamp(m.playlistCursor, len(lists))
	if p, ok := m.snapshot.PlaylistByID(m.detailID); ok {
		m.detailCursor = clamp(m.detailCursor, len(p.Cuesheets))
	}
	m.dialogCursor = clamp(m.dialogCursor, len(m.dialogMatches()))
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m Model) renderPlaylists() string {
	styles := m.theme.Styles()
	var b strings.Builder

	lists := m.snapshot.Playlists.PlaylistsResult
	if len(lists) == 0 {
		if m.snapshot.Playlists.Refresh && m.snapshot.InFlight > 0 {
			b.WriteString(styles.MutedText.Render("Loading playlists..."))
		} else {
			b.WriteString(styles.MutedText.Render("No playlists yet. Press n to create one."))
		}
	}
	for i, p := range lists {
		line := fmt.Sprintf("%-40s %3d cuesheets", truncate(p.Name, 40), len(p.Cuesheets))
		if i == m.playlistCursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.creating {
		b.WriteString("\n")
		b.WriteString(m.createName.View())
	}
	if m.pendingDelete != "" {
		name := m.pendingDelete
		if p, ok := m.snapshot.PlaylistByID(m.pendingDelete); ok {
			name = p.Name
		}
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render(fmt.Sprintf("Delete playlist %q? (y/N)", name)))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	p, ok := m.snapshot.PlaylistByID(m.detailID)
	if !ok {
		return styles.Panel.Render(styles.MutedText.Render("Playlist not found: " + m.detailID))
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(p.Name))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d cuesheets", len(p.Cuesheets))))
	b.WriteString("\n\n")
	if len(p.Cuesheets) == 0 {
		b.WriteString(styles.MutedText.Render("Empty. Add cuesheets from the search view."))
	}
	for i, ref := range p.Cuesheets {
		line := truncate(ref.Title, 60)
		if i == m.detailCursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
