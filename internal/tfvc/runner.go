package tfvc

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/satococoa/tfwrap/internal/command"
	"github.com/satococoa/tfwrap/internal/ctxlog"
)

// DefaultToolPath is used when Tool.Path is empty.
const DefaultToolPath = "tf"

// Tool describes how to reach the tf executable.
type Tool struct {
	Path    string
	WorkDir string
	Env     []string
}

func (t Tool) command(args []string) command.Command {
	name := t.Path
	if name == "" {
		name = DefaultToolPath
	}
	return command.Command{
		Name:    name,
		Args:    args,
		WorkDir: t.WorkDir,
		Env:     t.Env,
	}
}

// Run executes cmd through shell and parses its output. Builder errors are
// returned before anything is executed. Errors from the shell itself, such
// as a missing executable, are wrapped and returned without parsing.
func Run[T any](ctx context.Context, shell command.ShellExecutor, tool Tool, cmd Command[T]) (T, error) {
	var zero T

	args := cmd.Arguments()
	if err := args.Err(); err != nil {
		return zero, err
	}

	c := tool.command(args.Command())
	ctxlog.FromContext(ctx).DebugContext(ctx, "running tf command",
		"tool", c.Name,
		"verb", args.Verb(),
		"operands", len(args.Operands()),
	)

	result, err := shell.Execute(ctx, c)
	if err != nil {
		return zero, fmt.Errorf("failed to run %s %s: %w", c.Name, args.Verb(), err)
	}

	return cmd.ParseOutput(result)
}

// RunAll runs independent commands with at most limit in flight and returns
// their results in input order. The first failure cancels the others.
func RunAll[T any](ctx context.Context, shell command.ShellExecutor, tool Tool, cmds []Command[T], limit int) ([]T, error) {
	if limit <= 0 {
		limit = 1
	}

	results := make([]T, len(cmds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, cmd := range cmds {
		g.Go(func() error {
			res, err := Run(gctx, shell, tool, cmd)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunSequential runs cmds one after another through executor and parses each
// result in input order. Every command runs even when an earlier one fails;
// the first failure in input order is returned.
func RunSequential[T any](ctx context.Context, executor command.CommandExecutor, tool Tool, cmds []Command[T]) ([]T, error) {
	invocations := make([]command.Command, 0, len(cmds))
	for _, cmd := range cmds {
		args := cmd.Arguments()
		if err := args.Err(); err != nil {
			return nil, err
		}
		invocations = append(invocations, tool.command(args.Command()))
	}

	ctxlog.FromContext(ctx).DebugContext(ctx, "running tf commands sequentially",
		"tool", tool.command(nil).Name,
		"invocations", len(invocations),
	)

	execution, err := executor.Execute(ctx, invocations)
	if err != nil {
		return nil, err
	}

	results := make([]T, len(cmds))
	for i, cmd := range cmds {
		if i >= len(execution.Results) {
			return nil, fmt.Errorf("missing result for %s", invocations[i].Name)
		}
		res := execution.Results[i]
		if res.Error != nil {
			return nil, fmt.Errorf("failed to run %s %s: %w", res.Command.Name, cmd.Arguments().Verb(), res.Error)
		}
		parsed, err := cmd.ParseOutput(res.Result)
		if err != nil {
			return nil, err
		}
		results[i] = parsed
	}
	return results, nil
}

// BatchPaths splits paths into groups of at most size so each invocation
// stays below command line length limits. A size <= 0 yields one batch.
func BatchPaths(paths []string, size int) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if size <= 0 || size >= len(paths) {
		return [][]string{slices.Clone(paths)}
	}

	batches := make([][]string, 0, (len(paths)+size-1)/size)
	for chunk := range slices.Chunk(paths, size) {
		batches = append(batches, slices.Clone(chunk))
	}
	return batches
}
