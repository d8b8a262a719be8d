// Package anthropic implements model.Model on top of the Anthropic Messages
// API. The Messages API has no schema-constrained response format, so the
// adapter appends the step contract to the system prompt and prefills the
// assistant turn with "{" to force a bare JSON object.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/reelmind/reelmind/model"
	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/step"
)

// outputContract is appended to the system prompt so Claude emits one step
// record per turn even without a structured-output mode.
const outputContract = `Respond with exactly one JSON object and nothing else. ` +
	`The object has a "step" field (one of START, PLAN, TOOL, OBSERVE, OUTPUT), ` +
	`a "content" field for START/PLAN/OUTPUT, and "tool" plus "input" fields for TOOL.`

// Options configures the Anthropic model adapter (model id, temperature, max
// tokens, API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Model wraps the Anthropic Messages API behind model.Model.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)
	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new Anthropic model from an existing client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// GenerateStep implements model.Model.
func (m *Model) GenerateStep(ctx context.Context, req model.Request) (model.Response, error) {
	system, messages := buildMessages(req.Messages)
	system = append(system, anthropic.TextBlockParam{Text: outputContract})

	// Prefill the assistant turn so the reply starts mid-object.
	messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock("{")))

	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    messages,
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(m.opts.Temperature),
		System:      system,
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return model.Response{}, fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("{")
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	raw := sb.String()
	st, err := step.Decode(raw)
	if err != nil {
		return model.Response{}, fmt.Errorf("anthropic response: %w", err)
	}

	return model.Response{Step: st, Raw: raw}, nil
}

// buildMessages converts transcript messages into Anthropic message params.
// Developer-role observation records have no native role and travel as user
// messages, which preserves their position relative to the triggering TOOL
// step.
func buildMessages(messages []session.Message) ([]anthropic.TextBlockParam, []anthropic.MessageParam) {
	var system []anthropic.TextBlockParam
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case session.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case session.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return system, out
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: string(m.opts.Model), Provider: "anthropic"}
}
