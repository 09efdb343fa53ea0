package tfvc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/satococoa/tfwrap/internal/errors"
)

// ServerContext identifies the collection and workspace a command runs
// against. Commands that talk to the server read it from their builder.
type ServerContext struct {
	CollectionURL string
	Workspace     string
}

// ArgumentBuilder assembles the tokens of a tf invocation:
//
//	<verb> [/<switch>[:<value>]]... <operand>...
//
// It is a value type. Every method returns an updated copy and leaves the
// receiver untouched. The first invalid input is remembered and reported by Err.
type ArgumentBuilder struct {
	verb     string
	context  *ServerContext
	switches []string
	operands []string
	err      error
}

// NewArgumentBuilder starts a builder for verb bound to ctx, which may be nil.
func NewArgumentBuilder(verb string, ctx *ServerContext) ArgumentBuilder {
	b := ArgumentBuilder{verb: verb, context: ctx}
	if strings.TrimSpace(verb) == "" {
		b.err = errors.InvalidArgument("verb", "verb must not be empty")
	}
	return b
}

// Add appends a single positional operand.
func (b ArgumentBuilder) Add(item string) ArgumentBuilder {
	if item == "" {
		return b.fail(errors.InvalidArgument("item", "operand must not be empty"))
	}
	b.operands = append(slices.Clip(b.operands), item)
	return b
}

// AddAll appends items as positional operands in order. A nil slice is an
// error; an empty one adds nothing.
func (b ArgumentBuilder) AddAll(items []string) ArgumentBuilder {
	if err := RequireStringArrayArgument(items, "items"); err != nil {
		return b.fail(err)
	}
	b.operands = append(slices.Clip(b.operands), items...)
	return b
}

// AddSwitch appends a bare switch such as /recursive.
func (b ArgumentBuilder) AddSwitch(name string) ArgumentBuilder {
	return b.AddSwitchWithValue(name, "")
}

// AddSwitchWithValue appends a valued switch such as /lock:checkin. An empty
// value renders the bare switch.
func (b ArgumentBuilder) AddSwitchWithValue(name, value string) ArgumentBuilder {
	if strings.TrimSpace(name) == "" {
		return b.fail(errors.InvalidArgument("switch", "switch name must not be empty"))
	}
	token := "/" + name
	if value != "" {
		token = fmt.Sprintf("/%s:%s", name, value)
	}
	b.switches = append(slices.Clip(b.switches), token)
	return b
}

// Verb returns the sub-command name.
func (b ArgumentBuilder) Verb() string {
	return b.verb
}

// Context returns the server context the builder was created with.
func (b ArgumentBuilder) Context() *ServerContext {
	return b.context
}

// Operands returns a copy of the positional operands.
func (b ArgumentBuilder) Operands() []string {
	return slices.Clone(b.operands)
}

// Err returns the first error recorded while building.
func (b ArgumentBuilder) Err() error {
	return b.err
}

// Command returns the assembled token sequence: verb, switches, operands.
func (b ArgumentBuilder) Command() []string {
	tokens := make([]string, 0, 1+len(b.switches)+len(b.operands))
	tokens = append(tokens, b.verb)
	tokens = append(tokens, b.switches...)
	return append(tokens, b.operands...)
}

func (b ArgumentBuilder) String() string {
	return strings.Join(b.Command(), " ")
}

func (b ArgumentBuilder) fail(err error) ArgumentBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}
