package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tferrors "github.com/satococoa/tfwrap/internal/errors"
)

// writeFakeTF installs a shell script standing in for tf and returns its path.
func writeFakeTF(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake tf is a POSIX shell script")
	}

	path := filepath.Join(t.TempDir(), "tf")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestAddCommand_Integration(t *testing.T) {
	t.Run("should parse output of a real process", func(t *testing.T) {
		tf := writeFakeTF(t, `printf 'folder1\\folder2:\r\nfile5.txt\r\n\r\nfile2.java\r\n'`)
		useWorkingDir(t, t.TempDir())

		out, err := runApp(t, "--tf", tf, "add", "--recursive", "folder1")

		require.NoError(t, err)
		assert.Equal(t, "folder1\\folder2\\file5.txt\nfolder1\\folder2\\file2.java\n", out)
	})

	t.Run("should pass switches before paths", func(t *testing.T) {
		dir := t.TempDir()
		argsFile := filepath.Join(dir, "args")
		tf := writeFakeTF(t, `for a in "$@"; do echo "$a"; done > "`+argsFile+`"`)
		useWorkingDir(t, dir)

		_, err := runApp(t, "--tf", tf, "add", "--lock", "checkin", "a.txt", "b.txt")

		require.NoError(t, err)
		data, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, "add\n/lock:checkin\na.txt\nb.txt\n", string(data))
	})

	t.Run("should fail on stderr even with exit code 0", func(t *testing.T) {
		tf := writeFakeTF(t, `echo "a.txt:" ; echo "TF10125: The path 'a.txt' must start with $/" >&2; exit 0`)
		useWorkingDir(t, t.TempDir())

		out, err := runApp(t, "--tf", tf, "add", "a.txt")

		assert.Empty(t, out)
		assert.ErrorIs(t, err, tferrors.ErrCommandExecution)
		assert.Contains(t, err.Error(), "TF10125")
	})

	t.Run("should report non-zero exit code", func(t *testing.T) {
		tf := writeFakeTF(t, `exit 100`)
		useWorkingDir(t, t.TempDir())

		_, err := runApp(t, "--tf", tf, "add", "a.txt")

		var execErr *tferrors.CommandExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, 100, execErr.ExitCode)
	})

	t.Run("should explain a missing executable", func(t *testing.T) {
		useWorkingDir(t, t.TempDir())

		_, err := runApp(t, "--tf", "tfwrap-missing-tf-xyz", "add", "a.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run tf executable: tfwrap-missing-tf-xyz")
	})

	t.Run("should explain a missing executable at an absolute path", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("POSIX path")
		}
		useWorkingDir(t, t.TempDir())
		missing := filepath.Join(t.TempDir(), "bin", "tf")

		_, err := runApp(t, "--tf", missing, "add", "a.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run tf executable: "+missing)
	})
}
