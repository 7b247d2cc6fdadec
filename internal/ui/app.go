package ui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/prefs"
	"github.com/five82/cuer/internal/state"
)

// View represents the active screen. Each view stands for one client route.
type View int

const (
	ViewSearch View = iota
	ViewPlaylists
	ViewPlaylistDetail
	ViewCuesheet
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	Logger       *log.Logger
	APIURL       string
	ThemeName    string
	PrefsPath    string
	InitialQuery string
	Cuecards     CuecardSource
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	logger    *log.Logger
	apiURL    string
	prefsPath string
	cuecards  CuecardSource
	keys      keyMap

	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	snapshot    state.Snapshot
	changes     <-chan struct{}
	unsubscribe func()

	// search view
	query        textinput.Model
	queryFocused bool
	lastQuery    string
	results      table.Model

	// quick searches
	rhythmPicking bool
	rhythmCursor  int

	// playlists views
	playlistCursor int
	detailID       string
	detailCursor   int
	createName     textinput.Model
	creating       bool
	pendingDelete  string

	// add-to-playlist dialog
	dialogFilter textinput.Model
	dialogCursor int

	// cuesheet view
	sheet     cuesheetState
	sheetView viewport.Model

	spinner  spinner.Model
	spinning bool
	help     help.Model
}

// New creates a Model bound to opts.Store.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	query := textinput.New()
	query.Placeholder = "title, phase:IV or rhythm:waltz"
	query.Prompt = "search: "
	query.CharLimit = 200
	query.SetValue(opts.InitialQuery)

	createName := textinput.New()
	createName.Placeholder = "playlist name"
	createName.Prompt = "new: "
	createName.CharLimit = 120

	filter := textinput.New()
	filter.Placeholder = "filter playlists"
	filter.Prompt = "> "

	m := Model{
		ctx:          ctx,
		store:        opts.Store,
		logger:       logger,
		apiURL:       opts.APIURL,
		prefsPath:    prefsPath,
		cuecards:     opts.Cuecards,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(themeName),
		currentView:  ViewSearch,
		query:        query,
		lastQuery:    strings.TrimSpace(opts.InitialQuery),
		results:      newResultsTable(),
		createName:   createName,
		dialogFilter: filter,
		sheetView:    newCuesheetViewport(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:         help.New(),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
		m.changes, m.unsubscribe = m.store.Subscribe()
	}
	m.syncResults()
	return m
}

// Route returns the client route of the active view.
func (m Model) Route() string {
	switch m.currentView {
	case ViewPlaylists:
		return "/playlists"
	case ViewPlaylistDetail:
		return "/playlists/" + m.detailID
	case ViewCuesheet:
		return "/cuesheets/" + m.sheet.id
	default:
		return "/"
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.store == nil {
		return tea.Batch(cmds...)
	}
	cmds = append(cmds, waitForChange(m.ctx, m.changes))
	var fetches []tea.Cmd
	if m.lastQuery != "" {
		fetches = append(fetches, m.send(action.SearchCuesheets(m.lastQuery, nil)))
	}
	if m.snapshot.Playlists.Refresh {
		fetches = append(fetches, m.send(action.ListPlaylists(nil)))
	}
	if len(fetches) > 0 {
		// Init works on a copy, so the spinner is started by a message.
		cmds = append(cmds, fetches...)
		cmds = append(cmds, func() tea.Msg { return spinnerStartMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.results.SetWidth(msg.Width - 4)
		m.results.SetHeight(max(3, msg.Height-8))
		m.resizeCuesheet()
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, waitForChange(m.ctx, m.changes)

	case outcomeMsg:
		return m.handleOutcome(msg)

	case cuecardMsg:
		return m.handleCuecard(msg)

	case spinnerStartMsg:
		if m.spinning {
			return m, nil
		}
		m.spinning = true
		return m, m.spinner.Tick

	case spinner.TickMsg:
		if !m.spinning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.updateInputs(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.snapshot.Search.DialogOpen {
		return m.renderDialog()
	}
	if m.rhythmPicking {
		return m.renderRhythmPicker()
	}
	return m.renderMain()
}

// Close releases the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.snapshot.Search.DialogOpen {
		return m.handleDialogKey(msg)
	}
	if m.queryFocused {
		return m.handleQueryKey(msg)
	}
	if m.creating {
		return m.handleCreateKey(msg)
	}
	if m.pendingDelete != "" {
		return m.handleDeleteConfirmKey(msg)
	}
	if m.rhythmPicking {
		return m.handleRhythmKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "T":
		m.cycleTheme()
		return m, nil
	case "s":
		m.currentView = ViewSearch
		return m, nil
	case "p":
		return m.showPlaylists()
	}

	switch m.currentView {
	case ViewPlaylists:
		return m.handlePlaylistsKey(msg)
	case ViewPlaylistDetail:
		return m.handleDetailKey(msg)
	case ViewCuesheet:
		return m.handleCuesheetKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

// handleOutcome folds a settled intent back into the view and decides whether
// the playlist collection needs another fetch.
func (m Model) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	m.refresh()
	if msg.err != nil {
		return m, nil
	}

	m.logger.Debug("intent settled", "id", msg.intent.ID, "origin", msg.intent.Origin, "outcome", msg.outcome.Kind())

	switch msg.outcome.(type) {
	case action.PlaylistCreated:
		m.creating = false
		m.createName.Reset()
		m.createName.Blur()
	case action.PlaylistRemoved:
		if m.currentView == ViewPlaylistDetail {
			if _, ok := m.snapshot.PlaylistByID(m.detailID); !ok {
				m.currentView = ViewPlaylists
			}
		}
	}

	if isMutation(msg.outcome) && m.snapshot.Playlists.Refresh {
		return m, m.dispatch(action.ListPlaylists(nil))
	}
	return m, nil
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.queryFocused {
		m.query, cmd = m.query.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.creating {
		m.createName, cmd = m.createName.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.snapshot.Search.DialogOpen {
		m.dialogFilter, cmd = m.dialogFilter.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// apply sends a local action through the store. Local actions settle
// synchronously so the snapshot is current on return.
func (m *Model) apply(a action.Action) {
	if m.store == nil {
		return
	}
	m.store.Dispatch(m.ctx, a)
	m.refresh()
}

// dispatch sends an intent and reports its outcome as an outcomeMsg, starting
// the spinner if it is idle.
func (m *Model) dispatch(in action.Intent) tea.Cmd {
	run := m.send(in)
	if run == nil {
		return nil
	}
	if m.spinning {
		return run
	}
	m.spinning = true
	return tea.Batch(run, m.spinner.Tick)
}

func (m Model) send(in action.Intent) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		out, err := state.Await(ctx, store.Dispatch(ctx, in))
		return outcomeMsg{intent: in, outcome: out, err: err}
	}
}

func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.snapshot = m.store.Snapshot()
	if m.snapshot.InFlight == 0 {
		m.spinning = false
	}
	m.syncResults()
	m.clampCursors()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LastQuery: m.lastQuery}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs", "path", m.prefsPath, "err", err)
	}
}

func isMutation(a action.Action) bool {
	switch a.(type) {
	case action.PlaylistCreated, action.PlaylistUpdated, action.PlaylistRemoved:
		return true
	}
	return false
}

// Messages

type storeChangedMsg struct{}

type spinnerStartMsg struct{}

type outcomeMsg struct {
	intent  action.Intent
	outcome action.Action
	err     error
}

// Commands

func waitForChange(ctx context.Context, ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ch:
			return storeChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// ends.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}
