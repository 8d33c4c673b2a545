package embedscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreseekdev/deltatext/pkg/ot"
)

func TestFormula_EvaluateWithScope(t *testing.T) {
	f := Formula{
		Expression: "a + b",
		Scope:      map[string]interface{}{"a": 2, "b": 3},
	}
	result, err := f.Evaluate()
	require.NoError(t, err)
	assert.EqualValues(t, 5, result)
}

func TestFormula_EvaluateRejectsBrokenExpression(t *testing.T) {
	f := Formula{Expression: "a +"}
	_, err := f.Evaluate()
	assert.Error(t, err)
}

func TestHandler_ComposeKeepsLaterExpression(t *testing.T) {
	var h Handler
	result, err := h.Compose(
		Formula{Expression: "1 + 1"},
		Formula{Expression: "2 + 2"},
		false,
	)
	require.NoError(t, err)
	assert.Equal(t, "2 + 2", result.(Formula).Expression)
}

func TestHandler_ComposeRejectsBrokenLaterExpression(t *testing.T) {
	var h Handler
	_, err := h.Compose(Formula{Expression: "1 + 1"}, Formula{Expression: "(("}, false)
	assert.Error(t, err)
}

func TestHandler_WiredThroughRegistry(t *testing.T) {
	registry := ot.NewRegistry()
	registry.Register(EmbedType, Handler{})

	a := ot.New().InsertEmbed(ot.Embed{Type: EmbedType, Data: Formula{Expression: "1 + 1"}}, nil)
	b := ot.New().RetainEmbed(ot.Embed{Type: EmbedType, Data: Formula{Expression: "3 * 3"}}, nil)

	result, err := ot.Compose(a, b, registry)
	require.NoError(t, err)
	require.Len(t, result.Ops, 1)
	assert.Equal(t, "3 * 3", result.Ops[0].Embed.Data.(Formula).Expression)
}
