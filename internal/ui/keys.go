package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for every view.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	ViewSearch    key.Binding
	ViewPlaylists key.Binding

	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Confirm key.Binding

	FocusSearch  key.Binding
	AddToList    key.Binding
	OpenCuesheet key.Binding
	PhasePreset  key.Binding
	RhythmPreset key.Binding

	NewPlaylist    key.Binding
	DeletePlaylist key.Binding
	Refresh        key.Binding
	RemoveCuesheet key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		ViewSearch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),
		ViewPlaylists: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "playlists"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),

		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "query"),
		),
		AddToList: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to playlist"),
		),
		OpenCuesheet: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open cuesheet"),
		),
		PhasePreset: key.NewBinding(
			key.WithKeys("2", "3", "4", "5", "6"),
			key.WithHelp("2-6", "phase II-VI"),
		),
		RhythmPreset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rhythm"),
		),

		NewPlaylist: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new playlist"),
		),
		DeletePlaylist: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		RemoveCuesheet: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.ViewPlaylists, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Confirm, k.Escape},
		{k.FocusSearch, k.PhasePreset, k.RhythmPreset, k.AddToList, k.OpenCuesheet, k.ViewSearch, k.ViewPlaylists},
		{k.NewPlaylist, k.DeletePlaylist, k.RemoveCuesheet, k.Refresh},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// viewKeys returns the bindings shown in the command bar for a view.
func (k keyMap) viewKeys(v View) []key.Binding {
	switch v {
	case ViewPlaylists:
		return []key.Binding{k.Confirm, k.NewPlaylist, k.DeletePlaylist, k.Refresh, k.ViewSearch, k.Quit}
	case ViewPlaylistDetail:
		return []key.Binding{k.OpenCuesheet, k.RemoveCuesheet, k.Escape, k.ViewSearch, k.Quit}
	case ViewCuesheet:
		return []key.Binding{k.Up, k.Down, k.Refresh, k.Escape, k.Quit}
	default:
		return []key.Binding{k.FocusSearch, k.AddToList, k.OpenCuesheet, k.ViewPlaylists, k.Help, k.Quit}
	}
}
