// Package agent implements the orchestration loop at the heart of the
// recommendation engine: a bounded, synchronous state machine that drives a
// structured-step model through PLAN → TOOL → OBSERVE → OUTPUT cycles.
//
// The loop never trusts the model to self-terminate by format alone. Every
// step kind except OUTPUT re-invokes the model, so a turn can only end
// through an explicit final-answer step, the per-turn step budget, context
// cancellation, or a model invocation failure, each of which produces a
// typed Result.
package agent
