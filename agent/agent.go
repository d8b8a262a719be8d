package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/reelmind/reelmind/logging"
	"github.com/reelmind/reelmind/model"
	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/step"
	"github.com/reelmind/reelmind/tool"
)

// DefaultMaxSteps bounds the number of model invocations per user turn. A
// model cycling START/PLAN forever would otherwise loop indefinitely.
const DefaultMaxSteps = 16

// Status is the terminal state of one user turn.
type Status string

const (
	// StatusCompleted means the model emitted an OUTPUT step.
	StatusCompleted Status = "completed"
	// StatusAborted means the turn ended without a final answer (step budget
	// exhausted, cancellation, or a model invocation failure).
	StatusAborted Status = "aborted"
)

// Result is the typed terminal outcome of a turn.
type Result struct {
	Status Status
	Output string // final recommendation text when completed
	Reason string // abort reason when aborted
	Steps  int    // model invocations performed
}

// Options configures an Agent.
type Options struct {
	// MaxSteps is the per-turn model invocation budget. Values < 1 fall back
	// to DefaultMaxSteps.
	MaxSteps int
	// Logger receives structured loop events. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Agent drives the structured step loop for one conversation turn: invoke
// the model, branch on the emitted step kind, dispatch tools, feed
// observations back, and stop on OUTPUT. It exclusively owns the session's
// transcript while Run executes.
type Agent struct {
	model    model.Model
	registry *tool.Registry
	opts     Options
}

// New constructs an Agent around a step model and a tool registry.
func New(m model.Model, registry *tool.Registry, optFns ...func(o *Options)) *Agent {
	opts := Options{
		MaxSteps: DefaultMaxSteps,
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = DefaultMaxSteps
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Agent{model: m, registry: registry, opts: opts}
}

// Run executes one user turn to completion. It appends the user message,
// then repeatedly invokes the model with the full transcript; every step
// kind except OUTPUT re-enters the loop, so termination happens only through
// an explicit final-answer step or the step budget.
//
// Transcript growth per iteration is exactly one assistant message, plus one
// developer observation message for TOOL steps, appended before the next
// model invocation so the model always sees its most recent tool result.
//
// A model invocation failure aborts the turn and is returned to the caller;
// messages appended so far stay in the transcript. Tool failures never abort:
// they travel back to the model as observation text.
func (a *Agent) Run(ctx context.Context, sess *session.Session, userText string) (Result, error) {
	sess.AppendMessage(session.RoleUser, userText)
	sess.AppendDisplay(session.Entry{Origin: session.OriginUser, Text: userText})

	a.opts.Logger.Info("agent.turn.start", "session_id", sess.ID, "max_steps", a.opts.MaxSteps)

	for i := 0; i < a.opts.MaxSteps; i++ {
		if err := ctx.Err(); err != nil {
			sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagError, Text: "turn cancelled"})
			return Result{Status: StatusAborted, Reason: "cancelled", Steps: i}, err
		}

		resp, err := a.model.GenerateStep(ctx, model.Request{Messages: sess.Messages()})
		if err != nil {
			a.opts.Logger.Error("agent.model.error", "session_id", sess.ID, "iteration", i+1, "error", err.Error())
			sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagError, Text: "model invocation failed"})
			return Result{Status: StatusAborted, Reason: "model invocation failed", Steps: i}, fmt.Errorf("generate step: %w", err)
		}

		sess.AppendMessage(session.RoleAssistant, resp.Raw)
		steps := i + 1
		st := resp.Step
		a.opts.Logger.Debug("agent.step", "session_id", sess.ID, "iteration", steps, "kind", string(st.Kind))

		switch st.Kind {
		case step.KindStart:
			sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagInitialized, Text: st.Content})

		case step.KindPlan:
			sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagPlanning, Text: st.Content})

		case step.KindTool:
			sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagToolCall, Text: st.Input})

			start := time.Now()
			output := a.registry.Invoke(ctx, st.Tool, st.Input)
			a.opts.Logger.Info("agent.tool.executed",
				"session_id", sess.ID,
				"tool", st.Tool,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			sess.AppendMessage(session.RoleDeveloper, step.NewObservation(st.Tool, st.Input, output).Encode())

		case step.KindObserve:
			// Observations are loop-authored; a model emitting one is noise.
			// Not rendered, the next invocation asks it to continue.
			a.opts.Logger.Warn("agent.step.unexpected_observe", "session_id", sess.ID, "iteration", steps)

		case step.KindOutput:
			sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagFinal, Text: st.Content})
			a.opts.Logger.Info("agent.turn.complete", "session_id", sess.ID, "steps", steps)
			return Result{Status: StatusCompleted, Output: st.Content, Steps: steps}, nil
		}
	}

	// Step budget exhausted: end the turn with a synthetic failure
	// observation so the stall is visible in the transcript as well.
	reason := fmt.Sprintf("no final answer after %d steps", a.opts.MaxSteps)
	sess.AppendMessage(session.RoleDeveloper, step.NewObservation("", "", "aborted: "+reason).Encode())
	sess.AppendDisplay(session.Entry{Origin: session.OriginAgent, Tag: session.TagError, Text: reason})
	a.opts.Logger.Warn("agent.turn.aborted", "session_id", sess.ID, "reason", reason)

	return Result{Status: StatusAborted, Reason: reason, Steps: a.opts.MaxSteps}, nil
}
