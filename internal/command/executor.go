package command

import "context"

// executor implements CommandExecutor interface
type executor struct {
	shell ShellExecutor
}

// NewCommandExecutor creates a new command executor with the given shell executor
func NewCommandExecutor(shell ShellExecutor) CommandExecutor {
	return &executor{
		shell: shell,
	}
}

// Execute executes the given commands in sequence and returns the results.
// A failing command does not stop the remaining ones.
func (e *executor) Execute(ctx context.Context, commands []Command) (*ExecutionResult, error) {
	result := &ExecutionResult{
		Results: make([]CommandResult, 0, len(commands)),
	}

	for _, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := e.shell.Execute(ctx, cmd)
		result.Results = append(result.Results, CommandResult{
			Command: cmd,
			Result:  res,
			Error:   err,
		})
	}

	return result, nil
}
