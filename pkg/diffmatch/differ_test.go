package diffmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreseekdev/deltatext/pkg/ot"
)

func TestDiffer_EqualStrings(t *testing.T) {
	d := New()
	segments := d.Diff("hello world", "hello world", ot.DefaultDiffTimeout)
	if assert.Len(t, segments, 1) {
		assert.Equal(t, ot.DiffEqual, segments[0].Kind)
		assert.Equal(t, "hello world", segments[0].Text)
	}
}

func TestDiffer_InsertAndDelete(t *testing.T) {
	d := New()
	segments := d.Diff("hello world", "hello there world", ot.DefaultDiffTimeout)

	var sawInsert, sawEqual bool
	for _, seg := range segments {
		switch seg.Kind {
		case ot.DiffInsert:
			sawInsert = true
		case ot.DiffEqual:
			sawEqual = true
		}
	}
	assert.True(t, sawInsert, "expected an inserted segment")
	assert.True(t, sawEqual, "expected at least one unchanged segment")
}

func TestDiffer_TotalTextRoundtrips(t *testing.T) {
	d := New()
	a := "the quick brown fox"
	b := "the slow brown foxes"
	segments := d.Diff(a, b, ot.DefaultDiffTimeout)

	var rebuiltA, rebuiltB string
	for _, seg := range segments {
		switch seg.Kind {
		case ot.DiffEqual:
			rebuiltA += seg.Text
			rebuiltB += seg.Text
		case ot.DiffDelete:
			rebuiltA += seg.Text
		case ot.DiffInsert:
			rebuiltB += seg.Text
		}
	}
	assert.Equal(t, a, rebuiltA)
	assert.Equal(t, b, rebuiltB)
}
