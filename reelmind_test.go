package reelmind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelmind/reelmind/agent"
	"github.com/reelmind/reelmind/model"
	"github.com/reelmind/reelmind/session"
	"github.com/reelmind/reelmind/step"
	"github.com/reelmind/reelmind/tool/movies"
)

func TestEngine_EndToEnd(t *testing.T) {
	scripted := model.NewScripted(
		step.Step{Kind: step.KindPlan, Content: "fetch sci-fi metadata"},
		step.Step{Kind: step.KindTool, Tool: movies.Name, Input: "sci-fi"},
		step.Step{Kind: step.KindOutput, Content: "Watch Space Odyssey 2001."},
	)
	engine := New(scripted)

	res, err := engine.RunTurn(context.Background(), "sess1", "Suggest a sci-fi movie under 150 minutes")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, res.Status)
	assert.Equal(t, 3, res.Steps)

	display := engine.Display("sess1")
	require.Len(t, display, 4)
	assert.Equal(t, session.TagFinal, display[3].Tag)
	assert.Contains(t, display[3].Text, "Space Odyssey 2001")
}

func TestEngine_ResetProperty(t *testing.T) {
	scripted := model.NewScripted(
		step.Step{Kind: step.KindOutput, Content: "quick answer"},
	)
	engine := New(scripted)

	_, err := engine.RunTurn(context.Background(), "sess1", "hi")
	require.NoError(t, err)
	require.NotEmpty(t, engine.Display("sess1"))

	engine.Reset("sess1")

	assert.Empty(t, engine.Display("sess1"))
}

func TestEngine_DefaultRegistryHasAlias(t *testing.T) {
	engine := New(model.NewScripted())

	_, ok := engine.Registry().Lookup(movies.Name)
	assert.True(t, ok)
	_, ok = engine.Registry().Lookup(movies.Alias)
	assert.True(t, ok)
}

func TestEngine_SessionsAreIsolated(t *testing.T) {
	scripted := model.NewScripted(
		step.Step{Kind: step.KindOutput, Content: "a"},
		step.Step{Kind: step.KindOutput, Content: "b"},
	)
	engine := New(scripted)

	_, err := engine.RunTurn(context.Background(), "s1", "first")
	require.NoError(t, err)
	_, err = engine.RunTurn(context.Background(), "s2", "second")
	require.NoError(t, err)

	assert.Len(t, engine.Display("s1"), 2)
	assert.Len(t, engine.Display("s2"), 2)
	assert.Equal(t, "first", engine.Display("s1")[0].Text)
	assert.Equal(t, "second", engine.Display("s2")[0].Text)
}
