package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cuer/internal/action"
)

// phasePresets are the quick phase searches bound to the keys 2 to 6.
var phasePresets = []string{"II", "III", "IV", "V", "VI"}

// rhythmPresets are the quick rhythm searches offered by the rhythm picker.
var rhythmPresets = []string{
	"Two Step", "Waltz", "Cha-Cha-Cha", "Rumba", "Foxtrot", "Tango",
	"Bolero", "Mambo", "Quickstep", "Jive", "Slow Two Step", "Samba",
	"Paso Doble", "Single Swing", "West Coast Swing", "Argentine Tango",
	"Hesitation Canter Waltz",
}

// phasePresetForKey maps the keys 2 to 6 onto phases II to VI.
func phasePresetForKey(k string) (string, bool) {
	if len(k) != 1 || k[0] < '2' || k[0] > '6' {
		return "", false
	}
	return phasePresets[k[0]-'2'], true
}

// runPreset fills the search box with a tagged query and dispatches it.
func (m Model) runPreset(query string, in action.Intent) (tea.Model, tea.Cmd) {
	m.query.SetValue(query)
	m.lastQuery = query
	m.currentView = ViewSearch
	m.savePrefs()
	return m, m.dispatch(in)
}

func (m Model) searchPhase(phase string) (tea.Model, tea.Cmd) {
	return m.runPreset("phase:"+phase, action.SearchByPhase(phase, nil))
}

func (m Model) searchRhythm(rhythm string) (tea.Model, tea.Cmd) {
	return m.runPreset("rhythm:"+rhythm, action.SearchByRhythm(rhythm, nil))
}

func (m Model) handleRhythmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "R":
		m.rhythmPicking = false
	case "k", "up":
		m.rhythmCursor = max(0, m.rhythmCursor-1)
	case "j", "down":
		m.rhythmCursor = min(len(rhythmPresets)-1, m.rhythmCursor+1)
	case "g", "home":
		m.rhythmCursor = 0
	case "G", "end":
		m.rhythmCursor = len(rhythmPresets) - 1
	case "enter":
		m.rhythmPicking = false
		return m.searchRhythm(rhythmPresets[m.rhythmCursor])
	}
	return m, nil
}

func (m Model) renderRhythmPicker() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Search by rhythm"))
	b.WriteString("\n\n")
	for i, r := range rhythmPresets {
		if i == m.rhythmCursor {
			b.WriteString(styles.Selected.Render("> " + r))
		} else {
			b.WriteString(styles.Text.Render("  " + r))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d rhythms  enter search  esc cancel", len(rhythmPresets))))

	box := styles.Dialog.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderPresets() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(phasePresets)+1)
	for i, p := range phasePresets {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("%d", i+2))+" "+styles.PhaseStyle(p).Render(p))
	}
	parts = append(parts, styles.WarningText.Render("R")+" "+styles.MutedText.Render("rhythm"))
	return styles.FaintText.Render("quick: ") + strings.Join(parts, "  ")
}
