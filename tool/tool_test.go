package tool

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool() *Func {
	return NewFunc("echo", "Echo the input back", func(_ context.Context, input string) string {
		return "echo:" + input
	})
}

func TestRegistry_Invoke(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool())

	got := reg.Invoke(context.Background(), "echo", "sci-fi")
	assert.Equal(t, "echo:sci-fi", got)
}

func TestRegistry_PassThroughFidelity(t *testing.T) {
	// The registry must return exactly what the tool function returns.
	tl := echoTool()
	reg := NewRegistry()
	reg.Register(tl)

	ctx := context.Background()
	for _, input := range []string{"", "sci-fi", "  padded  ", `{"weird":"json"}`} {
		direct := tl.Invoke(ctx, input)
		assert.Equal(t, direct, reg.Invoke(ctx, tl.Name(), input))
	}
}

func TestRegistry_Aliasing(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool(), "echo_alias", "repeat")

	ctx := context.Background()
	assert.Equal(t, "echo:x", reg.Invoke(ctx, "echo_alias", "x"))
	assert.Equal(t, "echo:x", reg.Invoke(ctx, "repeat", "x"))

	alias, ok := reg.Lookup("echo_alias")
	require.True(t, ok)
	direct, ok := reg.Lookup("echo")
	require.True(t, ok)
	assert.Same(t, direct, alias)
}

func TestRegistry_UnknownToolNeverPanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool())

	out := reg.Invoke(context.Background(), "no_such_tool", "x")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "no_such_tool")
}

func TestRegistry_EmptyNameResolvesToNotFound(t *testing.T) {
	reg := NewRegistry()

	out := reg.Invoke(context.Background(), "", "x")
	assert.Contains(t, strings.ToLower(out), "not found")
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool(), "zz_alias")
	reg.Register(NewFunc("another", "Another tool", func(_ context.Context, _ string) string { return "" }))

	assert.Equal(t, []string{"another", "echo", "zz_alias"}, reg.Names())
}
