package ot

// DiffKind classifies a segment reported by a CharDiffer.
type DiffKind int

const (
	// DiffEqual marks a run of text unchanged between the two documents.
	DiffEqual DiffKind = iota
	// DiffInsert marks a run of text present only in the second document.
	DiffInsert
	// DiffDelete marks a run of text present only in the first document.
	DiffDelete
)

// DiffSegment is one piece of a character-level diff: a run of Text (measured
// in UTF-16 code units, the same convention Op.Length uses) tagged with
// whether it was inserted, deleted, or unchanged.
type DiffSegment struct {
	Kind DiffKind
	Text string
}

// CharDiffer is the character-level diff collaborator of spec §6: a
// black-box function that reports how to turn string a into string b.
// TimeoutSeconds is best-effort; implementations may ignore it, the way a
// diff with no internal time budget would.
type CharDiffer interface {
	Diff(a, b string, timeoutSeconds float64) []DiffSegment
}

// DefaultDiffTimeout is the timeout (in seconds) Diff hands to the
// CharDiffer when the caller doesn't need a different budget.
const DefaultDiffTimeout = 1.0

// Diff produces a change set that turns document a into document b (spec
// §4.5). Both a and b must be documents (insert-only); otherwise Diff fails
// with ErrDocumentRequired. Character-level comparison is delegated to
// differ; embeds are compared for equality (by their Go value, via
// reflect.DeepEqual through Op.Equal) rather than recursed into — diffing
// does not know how to merge two different embeds of the same type, it can
// only tell they differ.
func Diff(a, b *ChangeSet, differ CharDiffer) (*ChangeSet, error) {
	if a.Equal(b) {
		return New(), nil
	}

	aDoc, err := a.Document()
	if err != nil {
		return nil, ErrDocumentRequired
	}
	bDoc, err := b.Document()
	if err != nil {
		return nil, ErrDocumentRequired
	}

	selfIt := a.Iterator()
	otherIt := b.Iterator()
	result := New()

	for _, seg := range differ.Diff(aDoc, bDoc, DefaultDiffTimeout) {
		remaining := utf16Len(seg.Text)
		if remaining == 0 {
			return nil, ErrZeroLengthDiffSegment
		}
		for remaining > 0 {
			var consumed int
			switch seg.Kind {
			case DiffInsert:
				consumed = min(otherIt.PeekLength(), remaining)
				result.Push(otherIt.Next(consumed))
			case DiffDelete:
				consumed = min(remaining, selfIt.PeekLength())
				selfIt.Next(consumed)
				result.Delete(consumed)
			case DiffEqual:
				consumed = min(min(selfIt.PeekLength(), otherIt.PeekLength()), remaining)
				selfOp := selfIt.Next(consumed)
				otherOp := otherIt.Next(consumed)
				if sameInsertPayload(selfOp, otherOp) {
					result.Retain(consumed, DiffAttr(selfOp.Attrs, otherOp.Attrs))
				} else {
					result.Push(otherOp)
					result.Delete(consumed)
				}
			}
			if consumed == 0 {
				return nil, ErrZeroLengthDiffSegment
			}
			remaining -= consumed
		}
	}
	return result.Chop(), nil
}

// sameInsertPayload reports whether two insert ops carry the same content:
// equal text, or a deep-equal embed of the same type.
func sameInsertPayload(a, b Op) bool {
	if a.Embed.IsZero() != b.Embed.IsZero() {
		return false
	}
	if !a.Embed.IsZero() {
		return a.Embed.equal(b.Embed)
	}
	return a.Text == b.Text
}
