// Package reelmind provides a small façade over the recommendation agent's
// collaborators (session store, tool registry, step model and logging)
// enabling a front end to run conversation turns with minimal setup. Most
// applications interact with this package by:
//  1. Creating an Engine via New() around a model implementation
//  2. Calling RunTurn for every user message
//  3. Rendering the session's display log after each turn
//
// All defaults (in-memory sessions, the mock metadata tool, no-op logging)
// are safe for local development and testing.
package reelmind

import (
	"context"

	"github.com/reelmind/reelmind/agent"
	"github.com/reelmind/reelmind/logging"
	"github.com/reelmind/reelmind/model"
	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/tool"
	"github.com/reelmind/reelmind/tool/movies"
)

// Options configures the Engine.
type Options struct {
	// SystemPrompt overrides the generated seed instruction.
	SystemPrompt string
	// MaxSteps bounds model invocations per turn (agent.DefaultMaxSteps if < 1).
	MaxSteps int
	// Registry overrides the default registry (mock metadata tool + alias).
	Registry *tool.Registry
	// Store overrides the default in-memory session store.
	Store session.Store
	// Logger defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// Engine aggregates the agent loop and its collaborators for one running
// application.
type Engine struct {
	agent    *agent.Agent
	store    session.Store
	registry *tool.Registry
	logger   logging.Logger
}

// New creates an Engine around the given step model with optional overrides.
// Any unset collaborator is initialized with an in-memory default.
func New(m model.Model, optFns ...func(o *Options)) *Engine {
	opts := Options{
		MaxSteps: agent.DefaultMaxSteps,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	registry := opts.Registry
	if registry == nil {
		registry = tool.NewRegistry()
		registry.Register(movies.NewMetadataTool(), movies.Alias)
	}

	prompt := opts.SystemPrompt
	if prompt == "" {
		prompt = agent.SystemPrompt(registry)
	}

	store := opts.Store
	if store == nil {
		store = session.NewInMemoryStore(prompt)
	}

	a := agent.New(m, registry, func(o *agent.Options) {
		o.MaxSteps = opts.MaxSteps
		o.Logger = opts.Logger
	})

	return &Engine{agent: a, store: store, registry: registry, logger: opts.Logger}
}

// RunTurn executes one user turn against the identified session, creating it
// on first use.
func (e *Engine) RunTurn(ctx context.Context, sessionID, userText string) (agent.Result, error) {
	return e.agent.Run(ctx, e.store.Get(sessionID), userText)
}

// Reset discards the identified session's transcript and display log,
// reseeding the system message.
func (e *Engine) Reset(sessionID string) { e.store.Reset(sessionID) }

// Display returns the current display log for rendering.
func (e *Engine) Display(sessionID string) []session.Entry {
	return e.store.Get(sessionID).Display()
}

// Registry exposes the tool registry, e.g. for registering additional tools
// before the first turn.
func (e *Engine) Registry() *tool.Registry { return e.registry }
