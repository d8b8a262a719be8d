// Package session holds conversation state for the recommendation agent: the
// append-only transcript exchanged with the model and the human-facing
// display log derived from structured steps. A Session is an explicit value
// passed into the agent loop; there is no process-wide singleton.
package session
