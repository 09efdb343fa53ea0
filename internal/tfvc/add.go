package tfvc

import (
	"fmt"
	"strings"

	"github.com/satococoa/tfwrap/internal/command"
	"github.com/satococoa/tfwrap/internal/errors"
)

// NoFilesToAddMessage is printed by tf add when none of its arguments
// matched a file. It is a successful no-op, not a path.
const NoFilesToAddMessage = "No arguments matched any files to add."

// LockType is the value of the /lock switch.
type LockType string

const (
	LockDefault  LockType = "" // no /lock switch
	LockNone     LockType = "none"
	LockCheckin  LockType = "checkin"
	LockCheckout LockType = "checkout"
)

// ParseLockType validates a lock name.
func ParseLockType(s string) (LockType, error) {
	switch l := LockType(s); l {
	case LockDefault, LockNone, LockCheckin, LockCheckout:
		return l, nil
	default:
		return LockDefault, errors.InvalidArgument("lock",
			fmt.Sprintf("lock must be one of none, checkin or checkout, got %q", s))
	}
}

// AddOptions are the switches understood by tf add.
type AddOptions struct {
	Lock      LockType
	FileType  string // /type:<value>, e.g. "binary"
	Recursive bool
	Silent    bool
	NoIgnore  bool

	// Root roots relative directories in the parsed output. It is not
	// passed to tf.
	Root string
}

// Add pends the addition of local items and reports the files tf added.
//
//	add [/lock:none|checkin|checkout] [/type:<value>] [/recursive] [/silent] [/noignore] <localItemSpec>...
type Add struct {
	serverContext *ServerContext
	itemPaths     []string
	options       AddOptions
}

// NewAdd validates its inputs and returns an immutable add request.
func NewAdd(ctx *ServerContext, itemPaths []string, opts AddOptions) (*Add, error) {
	if err := RequireStringArrayArgument(itemPaths, "itemPaths"); err != nil {
		return nil, err
	}
	if _, err := ParseLockType(string(opts.Lock)); err != nil {
		return nil, err
	}

	return &Add{
		serverContext: ctx,
		itemPaths:     append(make([]string, 0, len(itemPaths)), itemPaths...),
		options:       opts,
	}, nil
}

// Arguments builds the tf add command line.
func (a *Add) Arguments() ArgumentBuilder {
	b := NewArgumentBuilder("add", a.serverContext)

	if a.options.Lock != LockDefault {
		b = b.AddSwitchWithValue("lock", string(a.options.Lock))
	}
	if a.options.FileType != "" {
		b = b.AddSwitchWithValue("type", a.options.FileType)
	}
	if a.options.Recursive {
		b = b.AddSwitch("recursive")
	}
	if a.options.Silent {
		b = b.AddSwitch("silent")
	}
	if a.options.NoIgnore {
		b = b.AddSwitch("noignore")
	}

	return b.AddAll(a.itemPaths)
}

// ParseOutput returns the files tf reported as added, in output order.
//
// Example of output:
//
//	folder1\folder2:
//	file5.txt
//	file2.java
func (a *Add) ParseOutput(result *command.Result) ([]string, error) {
	if err := ProcessErrors(a.Arguments().Command(), result); err != nil {
		return nil, err
	}

	lines := SplitIntoLines(result.Stdout, false, true)
	scanner := NewEntryScanner(a.options.Root)

	added := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, NoFilesToAddMessage) {
			continue
		}
		if path, ok := scanner.Feed(line); ok {
			added = append(added, path)
		}
	}

	return added, nil
}
