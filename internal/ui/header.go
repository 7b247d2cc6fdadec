package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cuer/internal/cuer"
)

func (m Model) renderMain() string {
	var body string
	switch m.currentView {
	case ViewPlaylists:
		body = m.renderPlaylists()
	case ViewPlaylistDetail:
		body = m.renderDetail()
	case ViewCuesheet:
		body = m.renderCuesheet()
	default:
		body = m.renderSearch()
	}

	header := m.renderHeader()
	bar := m.renderCommandBar()
	bodyHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(bar))
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar)
}

// renderHeader renders the status bar: logo, route, API state, last error.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	parts := []string{
		bg.Render("cuer", styles.Logo),
		bg.Render(m.Route(), styles.AccentText),
	}
	if m.apiURL != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.apiURL, 40), styles.FaintText))
	}

	switch {
	case snap.InFlight > 0:
		parts = append(parts, bg.Render(fmt.Sprintf("%s %d pending", m.spinner.View(), snap.InFlight), styles.InfoText))
	case snap.IsOffline():
		parts = append(parts, bg.Render("● "+classifyConnectionError(snap.LastError), styles.DangerText))
	case snap.LastError == nil && !snap.LastUpdated.IsZero():
		parts = append(parts, bg.Render("● OK", styles.SuccessText))
	}

	if snap.LastError != nil {
		msg := snap.LastError.Error()
		if snap.LastFailureOrigin != "" {
			msg = snap.LastFailureOrigin + ": " + msg
		}
		parts = append(parts, bg.Render(truncate(msg, max(20, m.width/2)), styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	for _, b := range m.keys.viewKeys(m.currentView) {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.WarningText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	if n := len(m.snapshot.Search.SearchResult); n > 0 && m.currentView == ViewSearch {
		parts = append(parts, bg.Render(fmt.Sprintf("%d results", n), styles.FaintText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Press any key to close"))

	box := styles.Dialog.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// classifyConnectionError shortens an API failure to a status label.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, cuer.ErrStatus):
		return "API ERROR"
	case errors.Is(err, cuer.ErrDecode):
		return "BAD RESPONSE"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// truncate shortens a string to limit runes, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps both ends of value, which suits URLs and paths.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}
