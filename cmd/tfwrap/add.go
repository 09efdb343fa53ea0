package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/tfwrap/internal/command"
	"github.com/satococoa/tfwrap/internal/config"
	"github.com/satococoa/tfwrap/internal/ctxlog"
	"github.com/satococoa/tfwrap/internal/errors"
	"github.com/satococoa/tfwrap/internal/tfvc"
)

const addUsage = "tfwrap add [--lock none|checkin|checkout] [--type <type>] [--recursive] [--silent] [--noignore] <path>..."

// NewAddCommand creates the add command definition
func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Pend the addition of local files to version control",
		UsageText: addUsage,
		Description: "Runs 'tf add' for the given paths and prints every file tf reports as added, " +
			"one per line. Paths tf did not match are not an error.\n\n" +
			"Examples:\n" +
			"  tfwrap add src/main.cs                 # Add a single file\n" +
			"  tfwrap add --recursive src             # Add a folder and its contents\n" +
			"  tfwrap add --lock checkin docs/a.md    # Add and lock against check-in\n" +
			"  tfwrap add --root C:\\ws src            # Print results rooted under C:\\ws",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lock",
				Usage: "Lock type: none, checkin or checkout (default: defaults.lock)",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "File type, e.g. binary",
			},
			&cli.BoolFlag{
				Name:    "recursive",
				Usage:   "Add the contents of folders",
				Aliases: []string{"r"},
			},
			&cli.BoolFlag{
				Name:  "silent",
				Usage: "Do not print files tf skipped",
			},
			&cli.BoolFlag{
				Name:  "noignore",
				Usage: "Do not apply .tfignore rules",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Root relative result paths under this directory",
			},
		},
		Action: addCommand,
	}
}

func addCommand(ctx context.Context, cmd *cli.Command) error {
	w := outputWriter(cmd)

	if cmd.Args().Len() == 0 {
		return errors.PathsRequired(addUsage)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx = ctxlog.WithLogger(ctx, logger)
	return addCommandWithExecutor(ctx, cmd, w, newShellExecutor(), cfg)
}

func addCommandWithExecutor(
	ctx context.Context, cmd *cli.Command, w io.Writer, shell command.ShellExecutor, cfg *config.Config,
) error {
	opts, err := buildAddOptions(cmd, cfg)
	if err != nil {
		return err
	}

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.PathsRequired(addUsage)
	}

	batches := tfvc.BatchPaths(paths, cfg.Defaults.BatchSize)
	cmds := make([]tfvc.Command[[]string], 0, len(batches))
	for _, batch := range batches {
		add, err := tfvc.NewAdd(nil, batch, opts)
		if err != nil {
			return err
		}
		cmds = append(cmds, add)
	}

	tool := tfvc.Tool{Path: cfg.Tool.Path, Env: cfg.ToolEnv()}
	var results [][]string
	if cfg.Defaults.Parallelism <= 1 {
		results, err = tfvc.RunSequential(ctx, command.NewCommandExecutor(shell), tool, cmds)
	} else {
		results, err = tfvc.RunAll(ctx, shell, tool, cmds, cfg.Defaults.Parallelism)
	}
	if err != nil {
		if stderrors.Is(err, exec.ErrNotFound) || stderrors.Is(err, fs.ErrNotExist) {
			return errors.ToolNotFound(tool.Path, err)
		}
		return err
	}

	count := 0
	for _, files := range results {
		for _, file := range files {
			fmt.Fprintln(w, file)
			count++
		}
	}

	ctxlog.FromContext(ctx).DebugContext(ctx, "add finished",
		"requested", len(paths),
		"added", count,
		"invocations", len(cmds),
	)
	return nil
}

// buildAddOptions merges command flags over configuration defaults
func buildAddOptions(cmd *cli.Command, cfg *config.Config) (tfvc.AddOptions, error) {
	lockName := cfg.Defaults.Lock
	if cmd.IsSet("lock") {
		lockName = cmd.String("lock")
	}
	lock, err := tfvc.ParseLockType(lockName)
	if err != nil {
		return tfvc.AddOptions{}, err
	}

	return tfvc.AddOptions{
		Lock:      lock,
		FileType:  cmd.String("type"),
		Recursive: cmd.Bool("recursive") || cfg.Defaults.Recursive,
		Silent:    cmd.Bool("silent"),
		NoIgnore:  cmd.Bool("noignore") || cfg.Defaults.NoIgnore,
		Root:      cmd.String("root"),
	}, nil
}
