// Package logging provides a minimal logging interface and slog adapters for
// the recommendation agent.
//
// The Logger interface defines the standard structured methods (Debug, Info,
// Warn, Error) used by the agent loop and front end. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal so any structured
// logger can be plugged in.
package logging
