package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_InsertThenRetainPassesThrough(t *testing.T) {
	a := New().Insert("Hello", nil)
	b := New().Retain(5, nil).Insert(" World", nil)

	result, err := Compose(a, b, nil)
	require.NoError(t, err)
	doc, err := result.Document()
	require.NoError(t, err)
	assert.Equal(t, "Hello World", doc)
}

func TestCompose_DeleteCancelsInsert(t *testing.T) {
	a := New().Insert("Hello", nil)
	b := New().Delete(5)

	result, err := Compose(a, b, nil)
	require.NoError(t, err)
	assert.Len(t, result.Ops, 0)
}

func TestCompose_AttributesMergeOnRetain(t *testing.T) {
	a := New().Insert("Hello", AttrMap{"bold": true})
	b := New().Retain(5, AttrMap{"italic": true})

	result, err := Compose(a, b, nil)
	require.NoError(t, err)
	require.Len(t, result.Ops, 1)
	assert.Equal(t, AttrMap{"bold": true, "italic": true}, result.Ops[0].Attrs)
}

func TestCompose_NullAttributeRemovesIt(t *testing.T) {
	a := New().Insert("Hello", AttrMap{"bold": true})
	b := New().Retain(5, AttrMap{"bold": nil})

	result, err := Compose(a, b, nil)
	require.NoError(t, err)
	require.Len(t, result.Ops, 1)
	assert.Equal(t, "Hello", result.Ops[0].Text)
	assert.Nil(t, result.Ops[0].Attrs)
}

func TestCompose_WithEmbedRequiresRegistry(t *testing.T) {
	a := New().InsertEmbed(Embed{Type: "image", Data: "cat.png"}, nil)
	b := New().RetainEmbed(Embed{Type: "image", Data: "crop"}, nil)

	_, err := Compose(a, b, nil)
	assert.ErrorIs(t, err, ErrMissingEmbedHandler)
}

func TestCompose_WithEmbedUsesRegisteredHandler(t *testing.T) {
	registry := NewRegistry()
	registry.Register("image", stubImageHandler{})

	a := New().InsertEmbed(Embed{Type: "image", Data: "cat.png"}, nil)
	b := New().RetainEmbed(Embed{Type: "image", Data: "crop"}, nil)

	result, err := Compose(a, b, registry)
	require.NoError(t, err)
	require.Len(t, result.Ops, 1)
	assert.Equal(t, "cat.png+crop", result.Ops[0].Embed.Data)
}

// stubImageHandler is a minimal EmbedHandler used only to exercise the
// registry dispatch paths in compose/invert/transform tests.
type stubImageHandler struct{}

func (stubImageHandler) Compose(a, b interface{}, keepNull bool) (interface{}, error) {
	return a.(string) + "+" + b.(string), nil
}

func (stubImageHandler) Invert(delta, base interface{}) (interface{}, error) {
	return base, nil
}

func (stubImageHandler) Transform(a, b interface{}, priority bool) (interface{}, error) {
	return b, nil
}
