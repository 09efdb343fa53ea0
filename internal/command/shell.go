package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/satococoa/tfwrap/internal/ctxlog"
)

// realShellExecutor implements ShellExecutor using os/exec
type realShellExecutor struct{}

// NewRealShellExecutor creates a new shell executor that executes real commands
func NewRealShellExecutor() ShellExecutor {
	return &realShellExecutor{}
}

// Execute runs the command using os/exec, keeping stdout and stderr apart.
func (s *realShellExecutor) Execute(ctx context.Context, c Command) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With(
		"invocation", uuid.NewString(),
		"name", c.Name,
		"args", len(c.Args),
	)

	// #nosec G204 - the executable comes from configuration and arguments are passed without a shell
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.WorkDir != "" {
		cmd.Dir = c.WorkDir
	}
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.DebugContext(ctx, "starting command", "workdir", c.WorkDir)
	start := time.Now()
	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	default:
		logger.DebugContext(ctx, "command did not run", "error", err)
		return nil, err
	}

	logger.DebugContext(ctx, "command finished",
		"exit_code", result.ExitCode,
		"duration", time.Since(start),
	)
	return result, nil
}
