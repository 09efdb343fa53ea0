package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCommandExecution = errors.New("command execution failed")
)

// InvalidArgumentError reports a malformed input detected before any process ran.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CommandExecutionError reports that tf exited non-zero or wrote to stderr.
type CommandExecutionError struct {
	Command  []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandExecutionError) Error() string {
	details := strings.TrimSpace(e.Stderr)
	if details == "" {
		details = "no additional details available"
	}

	msg := fmt.Sprintf(`tf command failed: %s

Exit code: %d
Details: %s`, strings.Join(e.Command, " "), e.ExitCode, details)

	if tip := executionTip(details); tip != "" {
		msg += "\n\n" + tip
	}
	return msg
}

func (e *CommandExecutionError) Is(target error) bool {
	return target == ErrCommandExecution
}

func executionTip(stderr string) string {
	switch {
	case strings.Contains(stderr, "TF30063"):
		return `Cause: Not authorized to access the server
Solution: Sign in to the collection again and retry`
	case strings.Contains(stderr, "Unable to determine the workspace"):
		return `Cause: The path is not mapped in a local workspace
Solutions:
  • Run the command from inside a mapped workspace folder
  • Check the workspace mappings with 'tf workfold'`
	case strings.Contains(stderr, "is not recognized as the name of a cmdlet"),
		strings.Contains(stderr, "command not found"):
		return `Cause: tf executable not found
Solution: Set 'tool.path' in .tfwrap.yml or pass --tf`
	default:
		return "Tip: Try running the tf command manually to see the full error"
	}
}

// Validation Errors
func InvalidArgument(name, reason string) error {
	return &InvalidArgumentError{Name: name, Reason: reason}
}

func RequiredStringArray(name string) error {
	return InvalidArgument(name, fmt.Sprintf("%s must be a non-empty sequence of strings", name))
}

func PathsRequired(commandExample string) error {
	msg := fmt.Sprintf(`at least one path is required

Usage: %s

Examples:
  • tfwrap add src/main.go
  • tfwrap add --recursive src
  • tfwrap add --lock checkin docs/readme.md`, commandExample)
	return errors.New(msg)
}

// Execution Errors
func CommandExecutionFailed(command []string, exitCode int, stdout, stderr string) error {
	return &CommandExecutionError{
		Command:  append([]string(nil), command...),
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

func ToolNotFound(toolPath string, originalError error) error {
	msg := fmt.Sprintf(`failed to run tf executable: %s

Solutions:
  • Install Team Explorer Everywhere or Visual Studio's tf.exe
  • Set 'tool.path' in .tfwrap.yml to the full path of tf
  • Pass --tf <path> on the command line`, toolPath)

	msg += fmt.Sprintf("\n\nOriginal error: %v", originalError)
	return errors.New(msg)
}

// Configuration Errors
func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Run 'tfwrap init --force' to recreate the configuration`
	} else if strings.Contains(parseErrorStr, "no such file") {
		msg += `

Cause: Configuration file does not exist
Solution: Run 'tfwrap init' to create a configuration file`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions with 'ls -la .tfwrap.yml'`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return errors.New(msg)
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Use 'tfwrap init --force' to overwrite`, configPath)
	return errors.New(msg)
}

// File System Errors
func DirectoryAccessFailed(operation, path string, originalError error) error {
	msg := fmt.Sprintf("failed to %s directory: %s", operation, path)

	errorStr := originalError.Error()
	if strings.Contains(errorStr, "permission denied") {
		msg += `

Cause: Permission denied
Solutions:
  • Check directory permissions
  • Ensure you own the directory`
	} else if strings.Contains(errorStr, "no such file or directory") {
		msg += `

Cause: Directory does not exist
Solution: Check the path spelling`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", originalError)
	return errors.New(msg)
}
