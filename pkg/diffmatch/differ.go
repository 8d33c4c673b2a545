// Package diffmatch wraps Google's diff-match-patch algorithm as an
// ot.CharDiffer, the character-level collaborator ot.Diff delegates to.
package diffmatch

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/coreseekdev/deltatext/pkg/ot"
)

// Differ implements ot.CharDiffer using diffmatchpatch's Myers-diff-based
// DiffMain, with the semantic cleanup pass applied so adjacent diffs merge
// into fewer, more natural-feeling segments before ot.Diff walks them.
type Differ struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// New returns a ready-to-use Differ.
func New() *Differ {
	return &Differ{dmp: diffmatchpatch.New()}
}

// Diff implements ot.CharDiffer.
func (d *Differ) Diff(a, b string, timeoutSeconds float64) []ot.DiffSegment {
	d.dmp.DiffTimeout = durationFromSeconds(timeoutSeconds)

	diffs := d.dmp.DiffMain(a, b, false)
	diffs = d.dmp.DiffCleanupSemantic(diffs)

	segments := make([]ot.DiffSegment, 0, len(diffs))
	for _, diff := range diffs {
		segments = append(segments, ot.DiffSegment{
			Kind: diffKind(diff.Type),
			Text: diff.Text,
		})
	}
	return segments
}

func diffKind(t diffmatchpatch.Operation) ot.DiffKind {
	switch t {
	case diffmatchpatch.DiffInsert:
		return ot.DiffInsert
	case diffmatchpatch.DiffDelete:
		return ot.DiffDelete
	default:
		return ot.DiffEqual
	}
}
