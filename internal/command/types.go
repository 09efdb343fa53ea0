package command

import "context"

// Command represents an external tool invocation
type Command struct {
	Name    string   // Executable name or path (e.g., "tf")
	Args    []string // Command arguments
	WorkDir string   // Optional working directory
	Env     []string // Extra environment entries in KEY=VALUE form
}

// Result is the raw outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandResult represents the result of a single command execution
type CommandResult struct {
	Command Command
	Result  *Result
	Error   error
}

// ExecutionResult represents the result of executing multiple commands
type ExecutionResult struct {
	Results []CommandResult
}

// ShellExecutor interface abstracts the actual process execution.
// A non-zero exit status is reported through Result.ExitCode, not as an error.
type ShellExecutor interface {
	Execute(ctx context.Context, cmd Command) (*Result, error)
}

// CommandExecutor interface defines how commands are executed
type CommandExecutor interface {
	Execute(ctx context.Context, commands []Command) (*ExecutionResult, error)
}
