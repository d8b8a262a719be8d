package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transcript roles exchanged with the model.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	// RoleDeveloper carries serialized OBSERVE records back to the model.
	RoleDeveloper = "developer"
)

// Message is one entry in the transcript sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Origin identifies who a display entry is attributed to.
type Origin string

const (
	// OriginUser marks entries echoing user input.
	OriginUser Origin = "user"
	// OriginAgent marks entries produced by the agent loop.
	OriginAgent Origin = "agent"
)

// Tag classifies a display entry for rendering.
type Tag string

const (
	// TagInitialized marks a START step.
	TagInitialized Tag = "initialized"
	// TagPlanning marks a PLAN step.
	TagPlanning Tag = "planning"
	// TagToolCall marks a TOOL step (the text is the tool input).
	TagToolCall Tag = "tool-call"
	// TagFinal marks the OUTPUT step carrying the recommendation.
	TagFinal Tag = "final"
	// TagError marks a fatal turn failure surfaced to the user.
	TagError Tag = "error"
)

// Entry is one human-facing rendering unit. Raw OBSERVE payloads are
// model-internal and never become entries.
type Entry struct {
	Origin Origin `json:"origin"`
	Tag    Tag    `json:"tag,omitempty"`
	Text   string `json:"text"`
}

// Session holds one conversation: the append-only transcript exchanged with
// the model plus the separately rendered display log. The agent loop is the
// sole writer during a turn; the mutex makes reads from other goroutines
// (e.g. a rendering front end) safe.
//
// Contract:
//   - The transcript always starts with the system seed message
//   - Appends update the Updated timestamp
//   - Messages and Display return defensive copies
//   - Reset reseeds the transcript with only the system message and clears
//     the display log.
type Session struct {
	ID string

	mu           sync.RWMutex
	systemPrompt string
	messages     []Message
	display      []Entry
	created      time.Time
	updated      time.Time
}

// New creates a session seeded with the given system prompt. An empty id is
// replaced with a generated UUID.
func New(id, systemPrompt string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now()
	return &Session{
		ID:           id,
		systemPrompt: systemPrompt,
		messages:     []Message{{Role: RoleSystem, Content: systemPrompt}},
		created:      now,
		updated:      now,
	}
}

// AppendMessage appends one transcript message.
func (s *Session) AppendMessage(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Role: role, Content: content})
	s.updated = time.Now()
}

// AppendDisplay appends one display entry.
func (s *Session) AppendDisplay(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = append(s.display, e)
	s.updated = time.Now()
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Display returns a copy of the display log.
func (s *Session) Display() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.display))
	copy(out, s.display)
	return out
}

// Len returns the current transcript length.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Reset discards the transcript and display log, reseeding the transcript
// with only the system message.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []Message{{Role: RoleSystem, Content: s.systemPrompt}}
	s.display = nil
	s.updated = time.Now()
}

// Created returns the session creation time.
func (s *Session) Created() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.created
}

// Updated returns the last mutation time.
func (s *Session) Updated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}
