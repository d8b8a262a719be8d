// Package model defines the provider-agnostic contract for the structured
// step backend of the recommendation agent.
//
// Core goals:
//   - One invocation in, exactly one structured step out
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate deterministic testing (Scripted)
//
// Providers (OpenAI-compatible, Anthropic) implement the Model interface from
// this package so the agent loop remains decoupled from vendor SDKs.
package model
