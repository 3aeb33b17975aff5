package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/hartmannw/navigate/internal"
	"github.com/hartmannw/navigate/internal/resolve"
)

func run(ctx context.Context, cmd *cli.Command) error {
	req := resolve.Request{
		Args:    cmd.Args().Slice(),
		Add:     cmd.String("add"),
		WorkDir: cmd.String("current-directory"),
		Mark:    cmd.String("mark"),
		Jump:    cmd.String("jump"),
		Delete:  cmd.Bool("delete"),
		Ignore:  cmd.Bool("ignore"),
	}

	opts := []internal.Option{
		internal.WithRequest(req),
	}
	if path := cmd.String("config"); path != "" {
		opts = append(opts, internal.WithConfigPath(path))
	}

	dir, err := internal.Run(ctx, opts...)
	if err != nil {
		return err
	}
	if dir == "" {
		// Nothing resolved. The shell wrapper keys off the exit status,
		// so stay silent on the primary stream.
		return cli.Exit("", 1)
	}

	fmt.Println(dir)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "navigate",
		Usage:  "Efficient directory navigation",
		Action: run,
		Description: "With no arguments an interactive menu of known directories is shown.\n" +
			"A single argument names the directory to change into. With multiple\n" +
			"arguments the first selects the search order, f for most frequent or\n" +
			"r for most recent, and the remaining arguments are search terms that\n" +
			"must all match.",
		ArgsUsage: "[directory | f|r term...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "add",
				Aliases: []string{"a"},
				Usage:   "Add the given directory to the database",
			},
			&cli.StringFlag{
				Name:    "current-directory",
				Aliases: []string{"c"},
				Usage:   "Specify the current directory, keeping symbolic links unexpanded",
			},
			&cli.StringFlag{
				Name:    "mark",
				Aliases: []string{"m"},
				Usage:   "Mark the current directory with the given name",
			},
			&cli.BoolFlag{
				Name:    "delete",
				Aliases: []string{"d"},
				Usage:   "Remove information from the database",
			},
			&cli.BoolFlag{
				Name:    "ignore",
				Aliases: []string{"i"},
				Usage:   "Ignore the current directory for all purposes",
			},
			&cli.StringFlag{
				Name:    "jump",
				Aliases: []string{"j"},
				Usage:   "Jump to the given mark",
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to config file",
				DefaultText: "$NAVIGATE_DATA/config.yaml",
				Sources:     cli.EnvVars("NAVIGATE_CONFIG"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			slog.Error("application error", slog.String("error", msg))
		}
		os.Exit(1)
	}
}
