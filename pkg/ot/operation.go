package ot

// NullCharacter is the placeholder a Document() render substitutes for
// every embed insert, so a document's string form always has exactly one
// code unit per addressable position.
const NullCharacter = '\x00'

// ChangeSet is an ordered list of Ops in canonical form: no two adjacent
// ops are mergeable, a delete is never immediately followed by an insert
// (Push reorders that to insert-then-delete), and there is no trailing
// bare retain. A ChangeSet containing only inserts is a Document.
//
// The zero value is an empty, usable change set. Builder methods
// (Insert/Delete/Retain/Push/...) mutate the receiver and return it for
// chaining; this is the "internal construction mutates the output buffer"
// half of the immutability contract in spec §3 — once a ChangeSet has been
// handed to a caller as the result of an algebraic method, nothing in this
// package mutates it again; every algebraic method builds its result into
// a fresh *ChangeSet.
type ChangeSet struct {
	Ops []Op
}

// New returns an empty change set.
func New() *ChangeSet {
	return &ChangeSet{}
}

// FromOps returns a change set wrapping a copy of ops, in whatever order
// they're given — it does not re-run them through Push. Use this when ops
// are already known to be in canonical form (e.g. loaded from storage);
// otherwise build with Insert/Delete/Retain so Push can normalize.
func FromOps(ops []Op) *ChangeSet {
	return &ChangeSet{Ops: cloneOps(ops)}
}

func cloneOps(ops []Op) []Op {
	if len(ops) == 0 {
		return nil
	}
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[i] = op
		out[i].Attrs = cloneAttrMap(op.Attrs)
	}
	return out
}

// Insert appends a text insert, folding it into the canonical form via
// Push. A zero-length string is a no-op.
func (c *ChangeSet) Insert(text string, attrs AttrMap) *ChangeSet {
	if text == "" {
		return c
	}
	return c.Push(Insert(text, attrs))
}

// InsertEmbed appends an embed insert via Push.
func (c *ChangeSet) InsertEmbed(embed Embed, attrs AttrMap) *ChangeSet {
	return c.Push(InsertEmbed(embed, attrs))
}

// Delete appends a delete via Push. A non-positive count is a no-op.
func (c *ChangeSet) Delete(n int) *ChangeSet {
	if n <= 0 {
		return c
	}
	return c.Push(Delete(n))
}

// Retain appends a numeric retain via Push. A non-positive count is a
// no-op whatever attrs holds, matching Python's `retain(length<=0)` short
// circuit; an embed retain (RetainEmbed) always has length 1 and is never
// elided.
func (c *ChangeSet) Retain(n int, attrs AttrMap) *ChangeSet {
	if n <= 0 {
		return c
	}
	return c.Push(Retain(n, attrs))
}

// RetainEmbed appends an embed-mutation retain via Push. Unlike numeric
// Retain, this never short-circuits on a zero count — an embed retain
// always has length 1.
func (c *ChangeSet) RetainEmbed(embed Embed, attrs AttrMap) *ChangeSet {
	return c.Push(RetainEmbed(embed, attrs))
}

// Push appends op to the change set, re-establishing canonical form
// (spec §4.3):
//
//  1. two deletes merge;
//  2. a delete immediately followed by an insert is reordered so the
//     insert lands before the delete (letting later inserts coalesce with
//     it instead of the delete);
//  3. at whichever position the candidate op now targets, if its
//     attribute map equals the op it's landing next to, two text inserts
//     concatenate and two numeric retains add their counts (copying the
//     candidate's attribute map onto the merged retain, so an
//     attribute-only change on an otherwise-identical retain still takes
//     effect);
//  4. otherwise the op is inserted at that position outright.
func (c *ChangeSet) Push(op Op) *ChangeSet {
	op.Attrs = cloneAttrMap(op.Attrs)

	if len(c.Ops) == 0 {
		c.Ops = append(c.Ops, op)
		return c
	}

	lastIndex := len(c.Ops) - 1
	last := c.Ops[lastIndex]

	if op.Kind == KindDelete && last.Kind == KindDelete {
		last.N += op.N
		c.Ops[lastIndex] = last
		return c
	}

	insertAt := len(c.Ops) // where the candidate lands if nothing merges
	mergeAt := lastIndex   // which existing op we try to merge into

	if last.Kind == KindDelete && op.Kind == KindInsert {
		insertAt = lastIndex // land before the trailing delete
		mergeAt = lastIndex - 1
	}

	if mergeAt >= 0 {
		target := c.Ops[mergeAt]
		if attrMapEqual(op.Attrs, target.Attrs) {
			switch {
			case op.Kind == KindInsert && target.Kind == KindInsert &&
				op.Embed.IsZero() && target.Embed.IsZero():
				target.Text += op.Text
				c.Ops[mergeAt] = target
				return c
			case op.Kind == KindRetain && target.Kind == KindRetain &&
				op.Embed.IsZero() && target.Embed.IsZero():
				target.N += op.N
				target.Attrs = op.Attrs
				c.Ops[mergeAt] = target
				return c
			}
		}
	}

	c.Ops = append(c.Ops, Op{})
	copy(c.Ops[insertAt+1:], c.Ops[insertAt:])
	c.Ops[insertAt] = op
	return c
}

// Extend appends each op in ops, Push-ing the first (so the seam between
// the two streams is normalized) and appending the rest raw, because a
// second change set's internal ops are already canonical relative to each
// other.
func (c *ChangeSet) Extend(ops []Op) *ChangeSet {
	if len(ops) == 0 {
		return c
	}
	c.Push(ops[0])
	c.Ops = append(c.Ops, cloneOps(ops[1:])...)
	return c
}

// Concat returns a fresh change set equal to c with other's ops appended.
func (c *ChangeSet) Concat(other *ChangeSet) *ChangeSet {
	result := &ChangeSet{Ops: cloneOps(c.Ops)}
	var otherOps []Op
	if other != nil {
		otherOps = other.Ops
	}
	return result.Extend(otherOps)
}

// Chop removes a trailing bare (attributeless, non-embed) numeric retain,
// since it has no observable effect.
func (c *ChangeSet) Chop() *ChangeSet {
	if len(c.Ops) == 0 {
		return c
	}
	last := c.Ops[len(c.Ops)-1]
	if last.Kind == KindRetain && last.Embed.IsZero() && len(last.Attrs) == 0 {
		c.Ops = c.Ops[:len(c.Ops)-1]
	}
	return c
}

// Iterator returns a fresh OpIterator positioned at the start of c's ops.
func (c *ChangeSet) Iterator() *OpIterator {
	return NewOpIterator(c.Ops)
}

// Length returns the total number of document units c's ops address
// (inserts and retains add their length, deletes add their count too —
// this is a size of the op list, not the net effect on document length;
// see ChangeLength for that).
func (c *ChangeSet) Length() int {
	total := 0
	for _, op := range c.Ops {
		total += op.Length()
	}
	return total
}

// ChangeLength returns the net change in document length composing c onto
// a document would cause: inserts add their length, deletes subtract their
// count, and retains (numeric or embed) add nothing.
func (c *ChangeSet) ChangeLength() int {
	total := 0
	for _, op := range c.Ops {
		switch op.Kind {
		case KindDelete:
			total -= op.N
		case KindInsert:
			total += op.Length()
		}
	}
	return total
}

// Document renders c as a document string: the concatenation of every
// insert's text, with each embed insert replaced by NullCharacter. It
// fails with ErrMalformedDelta if c contains any delete or retain.
func (c *ChangeSet) Document() (string, error) {
	var sb []rune
	for _, op := range c.Ops {
		if op.Kind != KindInsert {
			return "", ErrMalformedDelta
		}
		if !op.Embed.IsZero() {
			sb = append(sb, NullCharacter)
			continue
		}
		sb = append(sb, []rune(op.Text)...)
	}
	return string(sb), nil
}

// Equal reports whether two change sets have identical op lists.
func (c *ChangeSet) Equal(other *ChangeSet) bool {
	if other == nil {
		return len(c.Ops) == 0
	}
	if len(c.Ops) != len(other.Ops) {
		return false
	}
	for i, op := range c.Ops {
		if !op.Equal(other.Ops[i]) {
			return false
		}
	}
	return true
}

// SliceStep is Slice with an explicit stride, for callers translating a
// Python-style slice(start, stop, step) request: step must be 1 (or 0,
// meaning "unspecified"), since the change-set algebra has no notion of
// skipping document units. Any other stride is rejected with
// ErrUnsupportedSliceStep before start/stop are even validated.
func (c *ChangeSet) SliceStep(start, stop, step int) (*ChangeSet, error) {
	if step != 0 && step != 1 {
		return nil, ErrUnsupportedSliceStep
	}
	return c.Slice(start, stop)
}

// Slice returns the portion of c spanning document units [start, stop).
// Pass stop < 0 for "to the end". Negative start, or a non-negative stop
// less than start, is rejected with ErrNegativeIndex.
func (c *ChangeSet) Slice(start, stop int) (*ChangeSet, error) {
	if start < 0 {
		return nil, ErrNegativeIndex
	}
	if stop >= 0 && stop < start {
		return nil, ErrNegativeIndex
	}

	result := New()
	it := c.Iterator()
	index := 0
	for it.HasNext() {
		if stop >= 0 && index >= stop {
			break
		}
		var next Op
		if index < start {
			next = it.Next(start - index)
			index += next.Length()
			continue
		}
		if stop >= 0 {
			next = it.Next(stop - index)
		} else {
			next = it.NextAll()
		}
		result.Ops = append(result.Ops, next)
		index += next.Length()
	}
	return result, nil
}
