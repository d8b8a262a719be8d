// Package step defines the structured record a reasoning model emits for one
// turn of the recommendation loop, plus the boundary decoder that turns raw
// model output into a validated value.
//
// A model turn is exactly one Step. The loop branches on Kind: START and PLAN
// narrate progress, TOOL requests a data fetch, OUTPUT carries the final
// recommendation. OBSERVE is reserved for the developer-role feedback record
// the loop appends after executing a tool; models are not expected to author
// it themselves.
package step

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the step variants.
type Kind string

const (
	// KindStart announces that the agent initialized a new reasoning chain.
	KindStart Kind = "START"
	// KindPlan narrates an intermediate reasoning step.
	KindPlan Kind = "PLAN"
	// KindTool requests execution of a registered tool with a keyword input.
	KindTool Kind = "TOOL"
	// KindObserve is the feedback record carrying a tool result back to the model.
	KindObserve Kind = "OBSERVE"
	// KindOutput carries the final user-facing recommendation and ends the turn.
	KindOutput Kind = "OUTPUT"
)

// Valid reports whether k is one of the known step kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindStart, KindPlan, KindTool, KindObserve, KindOutput:
		return true
	}
	return false
}

// Step is one model-emitted record. Content is populated for START, PLAN and
// OUTPUT kinds; Tool and Input for TOOL kinds. The schema does not enforce
// the pairing structurally, so consumers must tolerate absent fields: a
// missing Content reads as empty and a TOOL step without a tool name resolves
// through the registry's not-found path rather than failing the turn.
type Step struct {
	Kind    Kind   `json:"step"`
	Content string `json:"content,omitempty"`
	Tool    string `json:"tool,omitempty"`
	Input   string `json:"input,omitempty"`
}

// DecodeError is returned when raw model output cannot be validated into a
// Step. Raw retains the offending payload for logging and diagnostics.
type DecodeError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode step: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode step: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode validates raw model output into a Step. It strips optional markdown
// code fences, requires a JSON object and normalizes the kind discriminant to
// upper case. Unknown kinds and unparseable payloads yield a *DecodeError;
// missing kind-dependent fields do not.
func Decode(raw string) (Step, error) {
	trimmed := stripFences(strings.TrimSpace(raw))
	if trimmed == "" {
		return Step{}, &DecodeError{Raw: raw, Reason: "empty payload"}
	}

	var s Step
	if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
		return Step{}, &DecodeError{Raw: raw, Reason: "invalid json", Err: err}
	}

	s.Kind = Kind(strings.ToUpper(strings.TrimSpace(string(s.Kind))))
	if !s.Kind.Valid() {
		return Step{}, &DecodeError{Raw: raw, Reason: fmt.Sprintf("unknown step kind %q", s.Kind)}
	}

	return s, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag. Some providers wrap structured output this way even when a
// bare object was requested.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Observation is the developer-role record appended to the transcript after a
// tool execution, echoing the call and its raw output back to the model.
type Observation struct {
	Kind   Kind   `json:"step"`
	Tool   string `json:"tool"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewObservation builds an OBSERVE record for the given tool execution.
func NewObservation(tool, input, output string) Observation {
	return Observation{Kind: KindObserve, Tool: tool, Input: input, Output: output}
}

// Encode returns the canonical JSON form fed back into the transcript.
func (o Observation) Encode() string {
	b, err := json.Marshal(o)
	if err != nil {
		// Observation fields are plain strings; Marshal cannot fail on them.
		return fmt.Sprintf(`{"step":"OBSERVE","tool":%q,"input":%q,"output":%q}`, o.Tool, o.Input, o.Output)
	}
	return string(b)
}

// Schema returns the JSON schema describing a Step, handed to providers that
// support constrained structured output. Strict mode requires every property
// to be listed as required, so kind-dependent fields that do not apply are
// emitted as empty strings and treated as absent by consumers.
func Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"step": map[string]any{
				"type":        "string",
				"enum":        []string{string(KindStart), string(KindPlan), string(KindTool), string(KindObserve), string(KindOutput)},
				"description": "Kind of reasoning step.",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Free text for START, PLAN and OUTPUT steps.",
			},
			"tool": map[string]any{
				"type":        "string",
				"description": "Name of the tool to invoke for TOOL steps.",
			},
			"input": map[string]any{
				"type":        "string",
				"description": "Single keyword argument for TOOL steps.",
			},
		},
		"required":             []string{"step", "content", "tool", "input"},
		"additionalProperties": false,
	}
}
