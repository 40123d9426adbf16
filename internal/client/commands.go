package client

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/isoron/habit-sync/internal/adapter"
	"github.com/isoron/habit-sync/models"
)

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Allocate a new sync key",
		Action: func(c *cli.Context) error {
			key, err := serverFrom(c).Register(contextFrom(c))
			if err != nil {
				return exitCode(err)
			}
			return printJSON(c, models.RegisterResponse{Key: key})
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Download the record stored under a sync key",
		ArgsUsage: "KEY",
		Action: func(c *cli.Context) error {
			key, err := argument(c, "KEY")
			if err != nil {
				return err
			}

			data, err := serverFrom(c).GetData(contextFrom(c), key)
			if err != nil {
				return exitCode(err)
			}
			return printJSON(c, data)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show the version of the record stored under a sync key",
		ArgsUsage: "KEY",
		Action: func(c *cli.Context) error {
			key, err := argument(c, "KEY")
			if err != nil {
				return err
			}

			version, err := serverFrom(c).GetDataVersion(contextFrom(c), key)
			if err != nil {
				return exitCode(err)
			}
			return printJSON(c, models.VersionResponse{Version: version})
		},
	}
}

func contentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "content",
			Aliases: []string{"c"},
			Usage:   "Record content (read from --file or stdin when omitted)",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Read record content from `FILE`",
		},
	}
}

func putCommand() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Upload a record at an explicit version",
		ArgsUsage: "KEY",
		Flags: append(contentFlags(),
			&cli.Int64Flag{
				Name:     "version",
				Aliases:  []string{"v"},
				Usage:    "Version of the uploaded record (stored version + 1)",
				Required: true,
			},
		),
		Action: func(c *cli.Context) error {
			key, err := argument(c, "KEY")
			if err != nil {
				return err
			}
			content, err := readContent(c)
			if err != nil {
				return err
			}

			data := models.SyncData{Version: c.Int64("version"), Content: content}
			if err = serverFrom(c).Put(contextFrom(c), key, data); err != nil {
				var conflict *adapter.ConflictError
				if errors.As(err, &conflict) {
					// show what the server holds before failing
					_ = printJSON(c, conflict.Current)
				}
				return exitCode(err)
			}
			return printJSON(c, models.VersionResponse{Version: data.Version})
		},
	}
}

func pushCommand() *cli.Command {
	return &cli.Command{
		Name:      "push",
		Usage:     "Upload a record, overwriting the server's content if another device wrote first",
		ArgsUsage: "KEY",
		Flags:     contentFlags(),
		Action: func(c *cli.Context) error {
			key, err := argument(c, "KEY")
			if err != nil {
				return err
			}
			content, err := readContent(c)
			if err != nil {
				return err
			}

			ctx := contextFrom(c)
			server := serverFrom(c)

			current, err := server.GetDataVersion(ctx, key)
			if err != nil {
				return exitCode(err)
			}

			stored, err := adapter.PushWithRetry(ctx, server, key, current+1, content, adapter.Overwrite)
			if err != nil {
				return exitCode(err)
			}
			return printJSON(c, models.VersionResponse{Version: stored})
		},
	}
}

func linkCommand() *cli.Command {
	return &cli.Command{
		Name:  "link",
		Usage: "Share a sync key through a short-lived link",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a link for a sync key",
				ArgsUsage: "KEY",
				Action: func(c *cli.Context) error {
					key, err := argument(c, "KEY")
					if err != nil {
						return err
					}

					link, err := serverFrom(c).RegisterLink(contextFrom(c), key)
					if err != nil {
						return exitCode(err)
					}
					return printJSON(c, link)
				},
			},
			{
				Name:      "get",
				Usage:     "Resolve a link to its sync key",
				ArgsUsage: "LINK_ID",
				Action: func(c *cli.Context) error {
					id, err := argument(c, "LINK_ID")
					if err != nil {
						return err
					}

					link, err := serverFrom(c).GetLink(contextFrom(c), id)
					if err != nil {
						return exitCode(err)
					}
					return printJSON(c, link)
				},
			},
		},
	}
}
