// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles config bootstrap and data reshaping.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Create a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "migrate-users",
				Usage: "Convert a legacy list-form users document to the map form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Path to the users document (defaults to the configured one)",
					},
				},
				Action: r.MigrateUsers,
			},
		},
	}
}

// booksCommand handles non-interactive listing and exports.
func booksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "books",
		Usage: "Inspect and export a user's reading log",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print a user's books",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "Owner of the records",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.BooksList,
			},
			{
				Name:  "export",
				Usage: "Export a user's reading log",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "Owner of the records",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv, markdown, text)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (stdout when omitted)",
					},
				},
				Action: r.BooksExport,
			},
		},
	}
}

// tuiCommand returns the top-level command for the interactive tracker.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive reading tracker",
		Action:  r.TUI,
	}
}
