package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/tfwrap/internal/command"
	"github.com/satococoa/tfwrap/internal/config"
	"github.com/satococoa/tfwrap/internal/ctxlog"
	"github.com/satococoa/tfwrap/internal/errors"
)

// Variables to allow mocking in tests
var (
	osGetwd          = os.Getwd
	newShellExecutor = command.NewRealShellExecutor
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "tfwrap",
		Usage: "Typed front end for the TFVC tf command",
		Description: "tfwrap builds tf command lines from typed options, runs tf and reports " +
			"what it actually did, one path per line.",
		Version:               versionString(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file (default: ./" + config.ConfigFileName + ")",
			},
			&cli.StringFlag{
				Name:  "tf",
				Usage: "Path to the tf executable (overrides tool.path)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error (overrides logging.level)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Shorthand for --log-level debug",
			},
		},
		Commands: []*cli.Command{
			NewAddCommand(),
			NewInitCommand(),
		},
	}
}

// loadConfig reads --config when given, otherwise .tfwrap.yml in the
// working directory, and applies global flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var (
		cfg        *config.Config
		configPath string
		err        error
	)

	if explicit := cmd.String("config"); explicit != "" {
		configPath = explicit
		cfg, err = config.LoadConfigFile(explicit)
	} else {
		cwd, cwdErr := osGetwd()
		if cwdErr != nil {
			return nil, errors.DirectoryAccessFailed("access current", ".", cwdErr)
		}
		configPath = filepath.Join(cwd, config.ConfigFileName)
		cfg, err = config.LoadConfig(cwd)
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(configPath, err)
	}

	if tf := cmd.String("tf"); tf != "" {
		cfg.Tool.Path = tf
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if cmd.Bool("verbose") {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	return ctxlog.New(ctxlog.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
