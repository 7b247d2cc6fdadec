package main

import "github.com/urfave/cli/v3"

// Command builds the cuer command tree. Without a subcommand it starts the TUI.
func (r *Runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "cuer",
		Usage:     "Search cuesheets and manage playlists",
		ArgsUsage: "[query]",
		Version:   "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config.toml",
				Sources: cli.EnvVars("CUER_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "prefs",
				Usage:   "Path to prefs.toml",
				Sources: cli.EnvVars("CUER_PREFS"),
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Base URL of the cuesheet API",
				Sources: cli.EnvVars("CUER_API_URL"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("CUER_LOG_LEVEL"),
			},
		},
		Action: r.TUI,
		Commands: []*cli.Command{
			searchCommand(r),
			showCommand(r),
			playlistsCommand(r),
			logsCommand(r),
		},
	}
}

func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search cuesheets by title, phase or rhythm",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "phase",
				Usage: "Search by phase, for example IV",
			},
			&cli.StringFlag{
				Name:  "rhythm",
				Usage: "Search by rhythm, for example Waltz",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Search,
	}
}

func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the document of a cuesheet",
		ArgsUsage: "<cuesheet-id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "url",
				Usage: "Print the document URL instead of fetching it",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Print the HTML as served",
			},
		},
		Action: r.Show,
	}
}

func playlistsCommand(r *Runner) *cli.Command {
	jsonFlag := func() cli.Flag {
		return &cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		}
	}
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Action:  r.PlaylistsList,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List playlists",
				Flags:  []cli.Flag{jsonFlag()},
				Action: r.PlaylistsList,
			},
			{
				Name:      "show",
				Usage:     "Show the cuesheets of one playlist",
				ArgsUsage: "<playlist-id>",
				Flags:     []cli.Flag{jsonFlag()},
				Action:    r.PlaylistsShow,
			},
			{
				Name:      "create",
				Usage:     "Create a playlist",
				ArgsUsage: "<name>",
				Action:    r.PlaylistsCreate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a playlist",
				ArgsUsage: "<playlist-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.PlaylistsDelete,
			},
			{
				Name:      "add",
				Usage:     "Add a cuesheet to a playlist",
				ArgsUsage: "<playlist-id> <cuesheet-id>",
				Action:    r.PlaylistsAdd,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove a cuesheet from a playlist",
				ArgsUsage: "<playlist-id> <cuesheet-id>",
				Action:    r.PlaylistsRemove,
			},
		},
	}
}

func logsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "Print the tail of the cuer log file",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "Number of lines to read, 0 for all",
				Value:   200,
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Minimum level to show",
				Value: "debug",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Log file to read instead of the configured one",
			},
		},
		Action: r.Logs,
	}
}
