package tfvc

import (
	"strings"

	"github.com/satococoa/tfwrap/internal/command"
	"github.com/satococoa/tfwrap/internal/errors"
)

// RequireStringArrayArgument rejects a nil slice or one holding an empty
// string. An empty, non-nil slice is accepted.
func RequireStringArrayArgument(values []string, name string) error {
	if values == nil {
		return errors.RequiredStringArray(name)
	}
	for _, v := range values {
		if v == "" {
			return errors.RequiredStringArray(name)
		}
	}
	return nil
}

// ProcessErrors fails when tf exited non-zero or wrote anything to stderr.
// tf sometimes reports errors with exit code 0, so any stderr output,
// even a bare newline, is enough.
// It must run before any stdout is parsed.
func ProcessErrors(cmd []string, result *command.Result) error {
	if result == nil {
		return errors.InvalidArgument("executionResult", "executionResult must not be nil")
	}
	if result.ExitCode != 0 || result.Stderr != "" {
		return errors.CommandExecutionFailed(cmd, result.ExitCode, result.Stdout, result.Stderr)
	}
	return nil
}

// SplitIntoLines splits text on LF and CRLF boundaries. A trailing
// terminator does not produce a final empty line. With filterEmptyLines,
// blank lines are dropped; with preserveLineEndings, each line keeps the
// terminator it had in text.
func SplitIntoLines(text string, preserveLineEndings, filterEmptyLines bool) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)

	for len(text) > 0 {
		var line, ending string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
			ending = "\n"
			if strings.HasSuffix(line, "\r") {
				line = line[:len(line)-1]
				ending = "\r\n"
			}
		} else {
			line, text = text, ""
		}

		if filterEmptyLines && strings.TrimSpace(line) == "" {
			continue
		}
		if preserveLineEndings {
			line += ending
		}
		lines = append(lines, line)
	}

	return lines
}
