package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/app"
	"github.com/five82/cuer/internal/config"
	"github.com/five82/cuer/internal/cuer"
	"github.com/five82/cuer/internal/logging"
	"github.com/five82/cuer/internal/logtail"
)

var errUsage = errors.New("usage")

// Runner holds the dependencies of the CLI actions.
type Runner struct {
	output  io.Writer
	logOut  io.Writer
	confirm func(title string) (bool, error)
	runTUI  func(ctx context.Context, opts app.Options) error
}

// RunnerOpts configures a Runner. Zero values use the terminal.
type RunnerOpts struct {
	Output    io.Writer
	LogOutput io.Writer
	Confirm   func(title string) (bool, error)
	RunTUI    func(ctx context.Context, opts app.Options) error
}

// NewRunner creates a Runner, filling unset dependencies with defaults.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Confirm == nil {
		opts.Confirm = confirmPrompt
	}
	if opts.RunTUI == nil {
		opts.RunTUI = app.Run
	}
	return &Runner{
		output:  opts.Output,
		logOut:  opts.LogOutput,
		confirm: opts.Confirm,
		runTUI:  opts.RunTUI,
	}
}

func confirmPrompt(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

func (r *Runner) options(cmd *cli.Command) app.Options {
	return app.Options{
		ConfigPath: cmd.String("config"),
		PrefsPath:  cmd.String("prefs"),
		APIURL:     cmd.String("api-url"),
		LogLevel:   cmd.String("log-level"),
	}
}

func (r *Runner) open(cmd *cli.Command) (*app.Runtime, error) {
	return app.Open(r.options(cmd), r.logOut)
}

// TUI starts the interactive interface, seeding the search box with any
// positional arguments.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	opts := r.options(cmd)
	opts.Query = strings.Join(cmd.Args().Slice(), " ")
	return r.runTUI(ctx, opts)
}

// Search runs one of the search intents and prints the ranked hits.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	in, err := searchIntent(strings.Join(cmd.Args().Slice(), " "), cmd.String("phase"), cmd.String("rhythm"))
	if err != nil {
		return err
	}

	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if _, err := rt.Dispatch(ctx, in); err != nil {
		return err
	}
	hits := rt.Store.Snapshot().Search.SearchResult

	if cmd.Bool("json") {
		return r.writeJSON(hits)
	}
	if len(hits) == 0 {
		return r.writePlain("No cuesheets found.\n")
	}
	rows := make([][]string, 0, len(hits))
	for _, c := range hits {
		rows = append(rows, []string{c.ID, c.Title, c.Rhythm, c.PhaseLabel(), strconv.FormatFloat(c.Score, 'f', 2, 64)})
	}
	return r.writeTable([]string{"ID", "TITLE", "RHYTHM", "PHASE", "SCORE"}, rows)
}

func searchIntent(query, phase, rhythm string) (action.Intent, error) {
	query, phase, rhythm = strings.TrimSpace(query), strings.TrimSpace(phase), strings.TrimSpace(rhythm)
	set := 0
	for _, v := range []string{query, phase, rhythm} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return action.Intent{}, fmt.Errorf("%w: give exactly one of a query, --phase or --rhythm", errUsage)
	}
	switch {
	case phase != "":
		return action.SearchByPhase(phase, nil), nil
	case rhythm != "":
		return action.SearchByRhythm(rhythm, nil), nil
	default:
		return action.SearchCuesheets(query, nil), nil
	}
}

// Show prints a cuesheet document as text, as raw HTML, or only its URL.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	args, err := requireArgs(cmd, "<cuesheet-id>")
	if err != nil {
		return err
	}

	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if cmd.Bool("url") {
		return r.writePlain("%s\n", rt.Client.CuecardURL(args[0]))
	}

	rt.Logger.Debug("fetch cuesheet", "id", args[0])
	doc, err := rt.Client.Cuecard(ctx, args[0])
	if err != nil {
		return err
	}
	if cmd.Bool("raw") {
		return r.writePlain("%s\n", strings.TrimRight(doc, "\n"))
	}
	text, err := cuer.CuecardText(doc)
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", text)
}

// PlaylistsList fetches and prints every playlist.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if _, err := rt.Dispatch(ctx, action.ListPlaylists(nil)); err != nil {
		return err
	}
	lists := rt.Store.Snapshot().Playlists.PlaylistsResult

	if cmd.Bool("json") {
		return r.writeJSON(lists)
	}
	if len(lists) == 0 {
		return r.writePlain("No playlists.\n")
	}
	rows := make([][]string, 0, len(lists))
	for _, p := range lists {
		rows = append(rows, []string{p.ID, p.Name, strconv.Itoa(len(p.Cuesheets))})
	}
	return r.writeTable([]string{"ID", "NAME", "CUESHEETS"}, rows)
}

// PlaylistsShow prints the cuesheets of one playlist.
func (r *Runner) PlaylistsShow(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArgs(cmd, "<playlist-id>")
	if err != nil {
		return err
	}

	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if _, err := rt.Dispatch(ctx, action.ListPlaylists(nil)); err != nil {
		return err
	}
	p, ok := rt.Store.Snapshot().PlaylistByID(id[0])
	if !ok {
		return fmt.Errorf("playlist %q not found", id[0])
	}

	if cmd.Bool("json") {
		return r.writeJSON(p)
	}
	if err := r.writePlain("%s (%s)\n", p.Name, p.ID); err != nil {
		return err
	}
	if len(p.Cuesheets) == 0 {
		return r.writePlain("No cuesheets.\n")
	}
	rows := make([][]string, 0, len(p.Cuesheets))
	for _, ref := range p.Cuesheets {
		rows = append(rows, []string{ref.ID, ref.Title})
	}
	return r.writeTable([]string{"ID", "TITLE"}, rows)
}

// PlaylistsCreate creates a playlist named by the arguments.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if name == "" {
		return fmt.Errorf("%w: create <name>", errUsage)
	}

	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out, err := rt.Dispatch(ctx, action.CreatePlaylist(name, nil))
	if err != nil {
		return err
	}
	created, ok := out.(action.PlaylistCreated)
	if !ok {
		return fmt.Errorf("unexpected outcome %s", out.Kind())
	}
	return r.writePlain("Created playlist %q (%s)\n", created.Playlist.Name, created.Playlist.ID)
}

// PlaylistsDelete deletes a playlist after confirmation.
func (r *Runner) PlaylistsDelete(ctx context.Context, cmd *cli.Command) error {
	args, err := requireArgs(cmd, "<playlist-id>")
	if err != nil {
		return err
	}
	id := args[0]

	if !cmd.Bool("yes") {
		ok, err := r.confirm(fmt.Sprintf("Delete playlist %s?", id))
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			return r.writePlain("Cancelled.\n")
		}
	}

	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if _, err := rt.Dispatch(ctx, action.DeletePlaylist(id, nil)); err != nil {
		return err
	}
	return r.writePlain("Deleted playlist %s\n", id)
}

// PlaylistsAdd adds a cuesheet to a playlist.
func (r *Runner) PlaylistsAdd(ctx context.Context, cmd *cli.Command) error {
	return r.membership(ctx, cmd, action.AddToPlaylist, "Added cuesheet %s to playlist %s\n")
}

// PlaylistsRemove removes a cuesheet from a playlist.
func (r *Runner) PlaylistsRemove(ctx context.Context, cmd *cli.Command) error {
	return r.membership(ctx, cmd, action.RemoveFromPlaylist, "Removed cuesheet %s from playlist %s\n")
}

func (r *Runner) membership(ctx context.Context, cmd *cli.Command, build func(id, cuesheetID string, err error) action.Intent, done string) error {
	args, err := requireArgs(cmd, "<playlist-id>", "<cuesheet-id>")
	if err != nil {
		return err
	}

	rt, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if _, err := rt.Dispatch(ctx, build(args[0], args[1], nil)); err != nil {
		return err
	}
	return r.writePlain(done, args[1], args[0])
}

// Logs prints the tail of the log file, filtered by level.
func (r *Runner) Logs(_ context.Context, cmd *cli.Command) error {
	path := strings.TrimSpace(cmd.String("file"))
	if path == "" {
		cfg, err := config.Load(cmd.String("config"))
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path = cfg.LogFile
	}

	lines, err := logtail.Read(path, cmd.Int("lines"))
	if err != nil {
		return err
	}
	lines = logtail.FilterLevel(lines, logging.ParseLevel(cmd.String("level")))
	if len(lines) == 0 {
		return r.writePlain("No log entries in %s\n", path)
	}
	return r.writePlain("%s\n", strings.Join(lines, "\n"))
}

func requireArgs(cmd *cli.Command, names ...string) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != len(names) {
		return nil, fmt.Errorf("%w: %s %s", errUsage, cmd.Name, strings.Join(names, " "))
	}
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
		if args[i] == "" {
			return nil, fmt.Errorf("%w: %s is empty", errUsage, names[i])
		}
	}
	return args, nil
}

func (r *Runner) writeJSON(data any) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	output = append(output, '\n')
	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.output, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeTable(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	return r.writePlain("%s\n", t.Render())
}

