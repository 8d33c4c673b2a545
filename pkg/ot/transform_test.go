package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_ConcurrentInsertsConverge(t *testing.T) {
	base := New().Insert("Hello World", nil)

	selfOp := New().Retain(5, nil).Insert(" Brave", nil)
	otherOp := New().Retain(11, nil).Insert("!", nil)

	// otherPrime rebases otherOp to apply after selfOp; selfPrime rebases
	// selfOp to apply after otherOp. Giving selfOp priority on the tie
	// breaks the symmetry consistently between the two rebases.
	otherPrime, err := Transform(selfOp, otherOp, true, nil)
	require.NoError(t, err)
	selfPrime, err := Transform(otherOp, selfOp, false, nil)
	require.NoError(t, err)

	leftPath, err := Compose(base, selfOp, nil)
	require.NoError(t, err)
	leftPath, err = Compose(leftPath, otherPrime, nil)
	require.NoError(t, err)

	rightPath, err := Compose(base, otherOp, nil)
	require.NoError(t, err)
	rightPath, err = Compose(rightPath, selfPrime, nil)
	require.NoError(t, err)

	leftDoc, err := leftPath.Document()
	require.NoError(t, err)
	rightDoc, err := rightPath.Document()
	require.NoError(t, err)
	assert.Equal(t, rightDoc, leftDoc)
}

func TestTransform_DeleteWinsOverRetain(t *testing.T) {
	self := New().Delete(5)
	other := New().Retain(5, AttrMap{"bold": true})

	result, err := Transform(self, other, false, nil)
	require.NoError(t, err)
	assert.Len(t, result.Ops, 0)
}

func TestTransform_OverlappingDeletesCancel(t *testing.T) {
	self := New().Delete(5)
	other := New().Delete(5)

	result, err := Transform(self, other, false, nil)
	require.NoError(t, err)
	assert.Len(t, result.Ops, 0)
}

func TestTransformPosition_ShiftsPastInsert(t *testing.T) {
	self := New().Retain(5, nil).Insert("abc", nil)
	assert.Equal(t, 8, TransformPosition(self, 5, false))
	assert.Equal(t, 5, TransformPosition(self, 5, true))
}

func TestTransformPosition_PullsBackPastDelete(t *testing.T) {
	self := New().Retain(5, nil).Delete(3)
	assert.Equal(t, 5, TransformPosition(self, 8, false))
	assert.Equal(t, 5, TransformPosition(self, 6, false))
	assert.Equal(t, 4, TransformPosition(self, 4, false))
}

// TestTransformPosition_InsertAfterDeleteStillShifts guards against offset
// advancing on a delete op: a delete must pull index back without consuming
// offset, so a later insert in the same change set still gets to run.
func TestTransformPosition_InsertAfterDeleteStillShifts(t *testing.T) {
	self := New().Delete(4).Insert("X", nil)
	assert.Equal(t, 1, TransformPosition(self, 2, false))
}
