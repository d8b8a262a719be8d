// Package tool implements the capability registry the agent loop dispatches
// TOOL steps against. Tools accept a single verbatim keyword string and
// return a string; all failure is encoded in the returned text so results can
// be fed back to the model as data rather than raised to the orchestration
// layer.
package tool

import "context"

// Tool is a single data-fetch capability exposed to the model.
//
// Implementations should:
//   - Provide a descriptive snake_case name
//   - Be deterministic for identical inputs where the backing data allows
//   - Encode errors in the returned text instead of panicking
//   - Be safe for concurrent use
type Tool interface {
	// Name returns the unique identifier used in TOOL steps.
	Name() string

	// Description returns a short natural language description exposed to
	// the model via the system instruction.
	Description() string

	// Invoke executes the tool with a single keyword input and returns the
	// serialized result or a human-readable error string.
	Invoke(ctx context.Context, input string) string
}

// Func adapts a plain function into a Tool.
type Func struct {
	name        string
	description string
	fn          func(ctx context.Context, input string) string
}

// NewFunc constructs a Func tool from an explicit name, description and
// implementation.
func NewFunc(name, description string, fn func(ctx context.Context, input string) string) *Func {
	return &Func{name: name, description: description, fn: fn}
}

// Name implements Tool.
func (t *Func) Name() string { return t.name }

// Description implements Tool.
func (t *Func) Description() string { return t.description }

// Invoke implements Tool.
func (t *Func) Invoke(ctx context.Context, input string) string { return t.fn(ctx, input) }
