package command

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandExecutor_Interface(t *testing.T) {
	t.Run("should execute single command", func(t *testing.T) {
		// Given: a command executor with mock shell executor
		mockShell := &mockShellExecutor{}
		executor := NewCommandExecutor(mockShell)

		// When: executing a single tf command
		cmd := Command{
			Name: "tf",
			Args: []string{"add", "folder1/file1.txt"},
		}
		result, err := executor.Execute(context.Background(), []Command{cmd})

		// Then: command should be executed successfully
		assert.NoError(t, err)
		require.NotNil(t, result)
		require.Len(t, result.Results, 1)
		assert.Equal(t, cmd, result.Results[0].Command)
		assert.NoError(t, result.Results[0].Error)
		assert.Equal(t, "success", result.Results[0].Result.Stdout)
	})

	t.Run("should execute multiple commands in sequence", func(t *testing.T) {
		mockShell := &mockShellExecutor{}
		executor := NewCommandExecutor(mockShell)

		commands := []Command{
			{Name: "tf", Args: []string{"add", "a.txt"}},
			{Name: "tf", Args: []string{"add", "b.txt"}},
		}
		result, err := executor.Execute(context.Background(), commands)

		assert.NoError(t, err)
		require.Len(t, result.Results, 2)
		assert.Equal(t, commands[0], result.Results[0].Command)
		assert.Equal(t, commands[1], result.Results[1].Command)
		require.Len(t, mockShell.executedCommands, 2)
	})

	t.Run("should record failures without stopping", func(t *testing.T) {
		mockShell := &mockShellExecutor{
			shouldFail: true,
		}
		executor := NewCommandExecutor(mockShell)

		commands := []Command{
			{Name: "tf", Args: []string{"add", "a.txt"}},
			{Name: "tf", Args: []string{"add", "b.txt"}},
		}
		result, err := executor.Execute(context.Background(), commands)

		// Execute itself doesn't fail
		assert.NoError(t, err)
		require.Len(t, result.Results, 2)
		assert.Error(t, result.Results[0].Error)
		assert.Error(t, result.Results[1].Error)
	})

	t.Run("should stop when context is cancelled", func(t *testing.T) {
		mockShell := &mockShellExecutor{}
		executor := NewCommandExecutor(mockShell)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := executor.Execute(ctx, []Command{{Name: "tf"}})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, result.Results)
		assert.Empty(t, mockShell.executedCommands)
	})

	t.Run("should support working directory", func(t *testing.T) {
		mockShell := &mockShellExecutor{}
		executor := NewCommandExecutor(mockShell)

		cmd := Command{
			Name:    "tf",
			Args:    []string{"status"},
			WorkDir: "/path/to/workspace",
		}
		_, err := executor.Execute(context.Background(), []Command{cmd})

		assert.NoError(t, err)
		assert.Equal(t, "/path/to/workspace", mockShell.lastWorkDir)
	})

	t.Run("should handle empty command list", func(t *testing.T) {
		executor := NewCommandExecutor(&mockShellExecutor{})

		result, err := executor.Execute(context.Background(), []Command{})

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Empty(t, result.Results)
	})
}

func TestRealShellExecutor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell utilities")
	}

	t.Run("should create real shell executor", func(t *testing.T) {
		shell := NewRealShellExecutor()

		assert.NotNil(t, shell)
		assert.Implements(t, (*ShellExecutor)(nil), shell)
	})

	t.Run("should capture stdout untrimmed", func(t *testing.T) {
		shell := NewRealShellExecutor()

		result, err := shell.Execute(context.Background(), Command{
			Name: "printf",
			Args: []string{"folder1:\nfile1.txt\n"},
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "folder1:\nfile1.txt\n", result.Stdout)
		assert.Empty(t, result.Stderr)
	})

	t.Run("should keep stderr separate and report exit code", func(t *testing.T) {
		shell := NewRealShellExecutor()

		result, err := shell.Execute(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", "echo out; echo boom >&2; exit 3"},
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "out\n", result.Stdout)
		assert.Equal(t, "boom\n", result.Stderr)
	})

	t.Run("should run in working directory", func(t *testing.T) {
		shell := NewRealShellExecutor()
		dir := t.TempDir()

		result, err := shell.Execute(context.Background(), Command{Name: "pwd", WorkDir: dir})

		require.NoError(t, err)
		assert.Contains(t, result.Stdout, dir[len(dir)-8:])
	})

	t.Run("should pass extra environment", func(t *testing.T) {
		shell := NewRealShellExecutor()

		result, err := shell.Execute(context.Background(), Command{
			Name: "sh",
			Args: []string{"-c", "printf %s \"$TFWRAP_TEST\""},
			Env:  []string{"TFWRAP_TEST=value"},
		})

		require.NoError(t, err)
		assert.Equal(t, "value", result.Stdout)
	})

	t.Run("should return error when executable is missing", func(t *testing.T) {
		shell := NewRealShellExecutor()

		result, err := shell.Execute(context.Background(), Command{Name: "nonexistent-command-xyz"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

// Mock implementation for testing
type mockShellExecutor struct {
	executedCommands []Command
	shouldFail       bool
	lastWorkDir      string
}

func (m *mockShellExecutor) Execute(_ context.Context, cmd Command) (*Result, error) {
	m.executedCommands = append(m.executedCommands, cmd)
	m.lastWorkDir = cmd.WorkDir

	if m.shouldFail {
		return nil, errors.New("command failed")
	}
	return &Result{Stdout: "success"}, nil
}
