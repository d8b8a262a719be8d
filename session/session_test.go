package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrompt = "You are a movie recommendation engine."

func TestNewSeedsSystemMessage(t *testing.T) {
	sess := New("s1", testPrompt)

	msgs := sess.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, testPrompt, msgs[0].Content)
	assert.Empty(t, sess.Display())
}

func TestNewGeneratesID(t *testing.T) {
	sess := New("", testPrompt)
	assert.NotEmpty(t, sess.ID)

	other := New("", testPrompt)
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestAppendOrderPreserved(t *testing.T) {
	sess := New("s1", testPrompt)
	sess.AppendMessage(RoleUser, "suggest a sci-fi movie")
	sess.AppendMessage(RoleAssistant, `{"step":"PLAN","content":"fetch"}`)
	sess.AppendMessage(RoleDeveloper, `{"step":"OBSERVE"}`)

	msgs := sess.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, []string{RoleSystem, RoleUser, RoleAssistant, RoleDeveloper},
		[]string{msgs[0].Role, msgs[1].Role, msgs[2].Role, msgs[3].Role})
}

func TestMessagesReturnsCopy(t *testing.T) {
	sess := New("s1", testPrompt)
	sess.AppendMessage(RoleUser, "hello")

	msgs := sess.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, testPrompt, sess.Messages()[0].Content)
}

func TestReset(t *testing.T) {
	sess := New("s1", testPrompt)
	sess.AppendMessage(RoleUser, "suggest a movie")
	sess.AppendMessage(RoleAssistant, `{"step":"OUTPUT","content":"done"}`)
	sess.AppendDisplay(Entry{Origin: OriginUser, Text: "suggest a movie"})
	sess.AppendDisplay(Entry{Origin: OriginAgent, Tag: TagFinal, Text: "done"})

	sess.Reset()

	msgs := sess.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, testPrompt, msgs[0].Content)
	assert.Empty(t, sess.Display())
}

func TestUpdatedAdvancesOnAppend(t *testing.T) {
	sess := New("s1", testPrompt)
	before := sess.Updated()
	sess.AppendMessage(RoleUser, "hi")
	assert.False(t, sess.Updated().Before(before))
}
