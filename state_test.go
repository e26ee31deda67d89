package cgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserState_TypedefScoping(t *testing.T) {
	s := NewState(NewSink(), []string{"size_t"})
	require.True(t, s.IsTypedefName("size_t"))
	assert.False(t, s.IsTypedefName("widget_t"))

	s.PushBlock(scopeBlock)
	s.DeclareTypedef("widget_t")
	assert.True(t, s.IsTypedefName("widget_t"))
	assert.True(t, s.IsTypedefName("size_t")) // still visible from outer scope

	s.PopBlock()
	assert.False(t, s.IsTypedefName("widget_t")) // scope discarded on pop
	assert.True(t, s.IsTypedefName("size_t"))
}

func TestParserState_ShadowingAndUndeclare(t *testing.T) {
	s := NewState(NewSink(), []string{"name"})
	s.PushBlock(scopeBlock)
	s.UndeclareTypedef("name") // e.g. `int name;` shadowing an outer typedef
	assert.False(t, s.IsTypedefName("name"))
	s.PopBlock()
	assert.True(t, s.IsTypedefName("name"))
}

func TestParserState_LoopAndSwitchVisibility(t *testing.T) {
	s := NewState(NewSink(), nil)
	assert.False(t, s.InLoop())
	assert.False(t, s.InSwitch())

	s.PushBlock(scopeLoop)
	assert.True(t, s.InLoop())
	s.PushBlock(scopeSwitch)
	assert.True(t, s.InSwitch())
	assert.True(t, s.InLoop()) // still nested inside the loop
	s.PopBlock()
	assert.False(t, s.InSwitch())
	s.PopBlock()
	assert.False(t, s.InLoop())
}

func TestParserState_DepthTracksPushPop(t *testing.T) {
	s := NewState(NewSink(), nil)
	assert.Equal(t, 1, s.Depth())
	s.PushBlock(scopeBlock)
	s.PushBlock(scopeBlock)
	assert.Equal(t, 3, s.Depth())
	s.PopBlock()
	assert.Equal(t, 2, s.Depth())
	s.PopBlock()
	s.PopBlock() // popping the last scope is a no-op
	assert.Equal(t, 1, s.Depth())
}
