package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/config"
	"github.com/five82/cuer/internal/cuer"
	"github.com/five82/cuer/internal/logging"
	"github.com/five82/cuer/internal/middleware"
	"github.com/five82/cuer/internal/prefs"
	"github.com/five82/cuer/internal/state"
	"github.com/five82/cuer/internal/ui"
)

// Options configure the cuer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cuer/prefs.toml
	APIURL     string // overrides api_url from the config file
	LogLevel   string // overrides log_level from the config file
	Query      string // initial search for the TUI
}

// Runtime holds the components shared by the TUI and the CLI commands.
type Runtime struct {
	Config config.Config
	Prefs  prefs.Prefs
	Logger *log.Logger
	Client *cuer.Client
	Store  *state.Store

	closer io.Closer
}

// Open loads configuration and wires client, middleware and store. Logs go
// to logOut, or to the configured log file when logOut is nil.
func Open(opts Options, logOut io.Writer) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithAPIURL(opts.APIURL)
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	rt := &Runtime{Config: cfg, Prefs: prefs.Load(opts.PrefsPath)}

	if logOut == nil {
		file, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		rt.closer = file
		logOut = file
	}
	rt.Logger = logging.New(logOut, cfg.LogLevel)

	client, err := cuer.NewClient(cfg.APIURL)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("init api client: %w", err)
	}
	rt.Client = client
	rt.Store = state.NewStore(middleware.NewAPI(client, rt.Logger))

	rt.Logger.Debug("runtime ready", "api", client.BaseURL(), "log_level", cfg.LogLevel)
	return rt, nil
}

// Close releases the log file, if one was opened.
func (r *Runtime) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Dispatch sends in through the store and waits for its outcome. A Failure
// outcome is returned together with its error.
func (r *Runtime) Dispatch(ctx context.Context, in action.Intent) (action.Action, error) {
	out, err := state.Await(ctx, r.Store.Dispatch(ctx, in))
	if err != nil {
		return nil, err
	}
	if f, ok := out.(action.Failure); ok {
		return out, fmt.Errorf("%s: %w", f.Origin, f.Err)
	}
	return out, nil
}

// Run boots the TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Open(opts, nil)
	if err != nil {
		return err
	}
	defer rt.Close()

	query := opts.Query
	if strings.TrimSpace(query) == "" {
		query = rt.Prefs.LastQuery
	}

	rt.Logger.Info("starting tui", "api", rt.Client.BaseURL())
	err = ui.Run(ui.Options{
		Context:      ctx,
		Store:        rt.Store,
		Logger:       rt.Logger,
		APIURL:       rt.Client.BaseURL(),
		ThemeName:    rt.Prefs.Theme,
		PrefsPath:    opts.PrefsPath,
		InitialQuery: query,
		Cuecards:     rt.Client,
	})
	if err != nil && ctx.Err() == nil {
		rt.Logger.Error("tui exited", "err", err)
		return err
	}
	rt.Logger.Info("tui closed")
	return nil
}
