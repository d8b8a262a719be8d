package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/step"
)

// Request captures the model input for one invocation: the full transcript
// so far plus the implied structured-output contract (step.Schema).
type Request struct {
	Messages []session.Message `json:"messages"`
}

// Response is one completed model invocation: exactly one validated step and
// its raw textual form, which is appended verbatim to the transcript.
type Response struct {
	Step step.Step `json:"step"`
	Raw  string    `json:"raw"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "scripted", ...
}

// Model is the model-invocation collaborator consumed by the agent loop:
// given the conversation transcript, return one structured step. Not a
// stream, not a multi-step batch.
type Model interface {
	GenerateStep(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// Scripted is a deterministic in-memory Model replaying a fixed step
// sequence. Useful for tests and offline demos.
type Scripted struct {
	mu       sync.Mutex
	steps    []step.Step
	idx      int
	requests []Request
}

// NewScripted constructs a Scripted model that emits the given steps in
// order, one per invocation.
func NewScripted(steps ...step.Step) *Scripted {
	return &Scripted{steps: steps}
}

// GenerateStep implements Model; it records the request for later inspection
// and fails once the script is exhausted.
func (m *Scripted) GenerateStep(_ context.Context, req Request) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.idx >= len(m.steps) {
		return Response{}, fmt.Errorf("scripted model exhausted after %d steps", len(m.steps))
	}
	s := m.steps[m.idx]
	m.idx++

	raw, err := json.Marshal(s)
	if err != nil {
		return Response{}, fmt.Errorf("marshal scripted step: %w", err)
	}
	return Response{Step: s, Raw: string(raw)}, nil
}

// Info implements Model.
func (m *Scripted) Info() Info { return Info{Name: "scripted", Provider: "scripted"} }

// Calls returns the number of invocations performed so far.
func (m *Scripted) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns the recorded invocation inputs in order.
func (m *Scripted) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}
