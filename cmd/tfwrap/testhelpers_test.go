package main

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/satococoa/tfwrap/internal/command"
)

// mockShellExecutor records tf invocations and answers them with respond.
type mockShellExecutor struct {
	mu       sync.Mutex
	executed []command.Command
	respond  func(command.Command) (*command.Result, error)
}

func (m *mockShellExecutor) Execute(_ context.Context, cmd command.Command) (*command.Result, error) {
	m.mu.Lock()
	m.executed = append(m.executed, cmd)
	m.mu.Unlock()

	if m.respond == nil {
		return &command.Result{}, nil
	}
	return m.respond(cmd)
}

// useMockShell swaps the shell executor factory for the duration of the test.
func useMockShell(t *testing.T, shell command.ShellExecutor) {
	t.Helper()

	prev := newShellExecutor
	newShellExecutor = func() command.ShellExecutor { return shell }
	t.Cleanup(func() { newShellExecutor = prev })
}

// useWorkingDir makes osGetwd report dir for the duration of the test.
func useWorkingDir(t *testing.T, dir string) {
	t.Helper()

	prev := osGetwd
	osGetwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { osGetwd = prev })
}

// runApp runs the application with args and returns what it wrote.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(context.Background(), append([]string{"tfwrap"}, args...))
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
