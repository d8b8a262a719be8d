package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/step"
)

func TestScripted_ReplaysSequence(t *testing.T) {
	m := NewScripted(
		step.Step{Kind: step.KindPlan, Content: "fetch data"},
		step.Step{Kind: step.KindOutput, Content: "watch Space Odyssey 2001"},
	)

	ctx := context.Background()
	req := Request{Messages: []session.Message{{Role: session.RoleUser, Content: "sci-fi"}}}

	first, err := m.GenerateStep(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, step.KindPlan, first.Step.Kind)
	assert.JSONEq(t, `{"step":"PLAN","content":"fetch data"}`, first.Raw)

	second, err := m.GenerateStep(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, step.KindOutput, second.Step.Kind)

	assert.Equal(t, 2, m.Calls())
	require.Len(t, m.Requests(), 2)
	assert.Equal(t, req.Messages, m.Requests()[0].Messages)
}

func TestScripted_Exhausted(t *testing.T) {
	m := NewScripted(step.Step{Kind: step.KindOutput, Content: "done"})
	ctx := context.Background()

	_, err := m.GenerateStep(ctx, Request{})
	require.NoError(t, err)

	_, err = m.GenerateStep(ctx, Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
}

func TestScripted_Info(t *testing.T) {
	m := NewScripted()
	assert.Equal(t, "scripted", m.Info().Provider)
}
