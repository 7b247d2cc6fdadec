package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cuer/internal/cuer"
)

// CuecardSource fetches the rendered document of a cuesheet.
type CuecardSource interface {
	Cuecard(ctx context.Context, id string) (string, error)
}

// cuesheetState holds the document shown by the cuesheet view.
type cuesheetState struct {
	id      string
	title   string
	text    string
	err     error
	loading bool
	back    View
}

type cuecardMsg struct {
	id   string
	text string
	err  error
}

func newCuesheetViewport() viewport.Model {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()
	return vp
}

func (m *Model) resizeCuesheet() {
	m.sheetView.Width = max(10, m.width-4)
	m.sheetView.Height = max(3, m.height-6)
}

// openCuesheet switches to the cuesheet view and starts fetching its document.
func (m Model) openCuesheet(id, title string) (tea.Model, tea.Cmd) {
	back := m.currentView
	if back == ViewCuesheet {
		back = m.sheet.back
	}
	m.sheet = cuesheetState{id: id, title: title, loading: true, back: back}
	m.currentView = ViewCuesheet
	m.sheetView.SetContent("")
	m.sheetView.GotoTop()
	return m, m.fetchCuecard(id)
}

func (m Model) fetchCuecard(id string) tea.Cmd {
	src, ctx := m.cuecards, m.ctx
	return func() tea.Msg {
		if src == nil {
			return cuecardMsg{id: id, err: fmt.Errorf("cuesheet documents are not available")}
		}
		doc, err := src.Cuecard(ctx, id)
		if err != nil {
			return cuecardMsg{id: id, err: err}
		}
		text, err := cuer.CuecardText(doc)
		return cuecardMsg{id: id, text: text, err: err}
	}
}

func (m Model) handleCuecard(msg cuecardMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.sheet.id {
		return m, nil
	}
	m.sheet.loading = false
	m.sheet.text = msg.text
	m.sheet.err = msg.err
	if msg.err != nil {
		m.logger.Warn("fetch cuesheet", "id", msg.id, "err", msg.err)
	}
	m.sheetView.SetContent(msg.text)
	m.sheetView.GotoTop()
	return m, nil
}

func (m Model) handleCuesheetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.currentView = m.sheet.back
		return m, nil
	case "g", "home":
		m.sheetView.GotoTop()
		return m, nil
	case "G", "end":
		m.sheetView.GotoBottom()
		return m, nil
	case "r":
		if m.sheet.loading {
			return m, nil
		}
		return m.openCuesheet(m.sheet.id, m.sheet.title)
	}

	var cmd tea.Cmd
	m.sheetView, cmd = m.sheetView.Update(msg)
	return m, cmd
}

func (m Model) renderCuesheet() string {
	styles := m.theme.Styles()
	var b strings.Builder

	title := m.sheet.title
	if title == "" {
		title = m.sheet.id
	}
	b.WriteString(styles.AccentText.Bold(true).Render(truncate(title, max(20, m.width-8))))
	b.WriteString("\n\n")

	switch {
	case m.sheet.loading:
		b.WriteString(styles.MutedText.Render(m.spinner.View() + " Loading cuesheet..."))
	case m.sheet.err != nil:
		b.WriteString(styles.DangerText.Render("Could not load cuesheet: " + m.sheet.err.Error()))
	case strings.TrimSpace(m.sheet.text) == "":
		b.WriteString(styles.MutedText.Render("This cuesheet is empty."))
	default:
		b.WriteString(m.sheetView.View())
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
