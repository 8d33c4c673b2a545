package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot deep-copies a change set's ops (including attribute maps) so a
// test can assert an operand came back unchanged after an algebraic call.
func snapshot(cs *ChangeSet) []Op {
	out := make([]Op, len(cs.Ops))
	for i, op := range cs.Ops {
		out[i] = op
		out[i].Attrs = cloneAttrMap(op.Attrs)
	}
	return out
}

func assertUnchanged(t *testing.T, cs *ChangeSet, before []Op) {
	t.Helper()
	require.Len(t, cs.Ops, len(before))
	for i, op := range before {
		assert.True(t, op.Equal(cs.Ops[i]), "op %d mutated: got %+v, want %+v", i, cs.Ops[i], op)
	}
}

// TestCompose_DoesNotMutateOperands exercises spec §8 property 5 for
// Compose: neither input change set is altered by producing a result.
func TestCompose_DoesNotMutateOperands(t *testing.T) {
	a := New().Insert("Hello", AttrMap{"bold": true}).Retain(3, nil)
	b := New().Retain(2, nil).Insert("X", nil).Delete(1)
	aBefore, bBefore := snapshot(a), snapshot(b)

	_, err := Compose(a, b, nil)
	require.NoError(t, err)

	assertUnchanged(t, a, aBefore)
	assertUnchanged(t, b, bBefore)
}

func TestDiff_DoesNotMutateOperands(t *testing.T) {
	a := New().Insert("Hello World", nil)
	b := New().Insert("Hello Brave World", nil)
	aBefore, bBefore := snapshot(a), snapshot(b)

	_, err := Diff(a, b, naiveDiffer{})
	require.NoError(t, err)

	assertUnchanged(t, a, aBefore)
	assertUnchanged(t, b, bBefore)
}

func TestInvert_DoesNotMutateOperands(t *testing.T) {
	base := New().Insert("Hello", AttrMap{"bold": true})
	delta := New().Retain(2, nil).Delete(3)
	baseBefore, deltaBefore := snapshot(base), snapshot(delta)

	_, err := Invert(delta, base, nil)
	require.NoError(t, err)

	assertUnchanged(t, base, baseBefore)
	assertUnchanged(t, delta, deltaBefore)
}

func TestTransform_DoesNotMutateOperands(t *testing.T) {
	a := New().Retain(2, nil).Insert("X", nil)
	b := New().Retain(2, nil).Delete(1)
	aBefore, bBefore := snapshot(a), snapshot(b)

	_, err := Transform(a, b, true, nil)
	require.NoError(t, err)

	assertUnchanged(t, a, aBefore)
	assertUnchanged(t, b, bBefore)
}

// TestPush_DoesNotAliasInputAttrMap guards against Push keeping a live
// reference to a caller-owned attribute map: mutating the map the caller
// passed in must not change what the change set recorded.
func TestPush_DoesNotAliasInputAttrMap(t *testing.T) {
	attrs := AttrMap{"bold": true}
	cs := New().Insert("Hello", attrs)

	attrs["bold"] = false
	attrs["italic"] = true

	assert.Equal(t, AttrMap{"bold": true}, cs.Ops[0].Attrs)
}
