// Package tfvc builds tf command lines from typed requests and parses tf's
// text output back into typed results.
package tfvc

import "github.com/satococoa/tfwrap/internal/command"

// Command is a single tf request. Arguments is pure and may be called any
// number of times; ParseOutput consumes the result of running those
// arguments and always applies ProcessErrors first.
type Command[T any] interface {
	Arguments() ArgumentBuilder
	ParseOutput(result *command.Result) (T, error)
}
