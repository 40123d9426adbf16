package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/isoron/habit-sync/internal/adapter"
	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/utils"
)

const adapterKey = "adapter"

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// NewApp creates the CLI application. Command output is written to out.
func NewApp(out io.Writer, log *logger.Logger) *cli.App {
	return &cli.App{
		Name:    "habit-sync",
		Usage:   "habit-sync command-line client",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "habit-sync server address (e.g., localhost:8080)",
				EnvVars: []string{"HABITSYNC_SERVER"},
				Value:   "localhost:8080",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request timeout",
				Value: 15 * time.Second,
			},
		},
		Commands: []*cli.Command{
			registerCommand(),
			getCommand(),
			versionCommand(),
			putCommand(),
			pushCommand(),
			linkCommand(),
		},
		Before: func(c *cli.Context) error {
			serverAdapter, err := adapter.NewHTTPServerAdapter(c.String("server"), c.Duration("timeout"), log)
			if err != nil {
				return err
			}
			c.App.Metadata[adapterKey] = serverAdapter
			return nil
		},
	}
}

func serverFrom(c *cli.Context) adapter.ServerAdapter {
	return c.App.Metadata[adapterKey].(adapter.ServerAdapter)
}

// contextFrom tags the command's context with a fresh trace id so the
// server's logs can be correlated with this invocation.
func contextFrom(c *cli.Context) context.Context {
	return utils.WithTraceID(c.Context, utils.NewTraceID())
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// argument returns the single positional argument of the command.
func argument(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("expected exactly one %s argument", name), 2)
	}
	return c.Args().First(), nil
}

// readContent returns the --content flag, or the contents of --file, or
// stdin when neither is given.
func readContent(c *cli.Context) (string, error) {
	if c.IsSet("content") {
		return c.String("content"), nil
	}

	var r io.Reader = os.Stdin
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// exitCode maps adapter errors to process exit codes.
func exitCode(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrKeyNotFound):
		return cli.Exit(err.Error(), 3)
	case errors.Is(err, adapter.ErrEditConflict):
		return cli.Exit(err.Error(), 4)
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return cli.Exit(err.Error(), 5)
	default:
		return cli.Exit(err.Error(), 1)
	}
}
