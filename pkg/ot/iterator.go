package ot

import "math"

// infiniteLength stands in for the "+∞" the spec's OpIterator reports once
// it has run past the end of its op list, so algebraic loops can treat a
// missing operand as an implicit infinite retain.
const infiniteLength = math.MaxInt32

// StripUnsetColor gates the compatibility behavior described in spec §4.2:
// an attribute value of "unset" or "windowtext" on the key "color" is
// stripped from any op OpIterator.Next returns. This leaked in from one
// particular upstream producer of such values; a from-scratch port may gate
// it behind a flag rather than always applying it; deltatext keeps it on by
// default (matching the source) but lets a caller turn it off.
var StripUnsetColor = true

// OpIterator is a borrowing cursor over a slice of Ops. It never
// materializes a new op stream; Next slices the current op on demand to
// exactly the requested length, advancing (index, offset) as it goes. The
// zero value is not usable; construct with NewOpIterator.
type OpIterator struct {
	ops    []Op
	index  int
	offset int
}

// NewOpIterator returns an iterator positioned at the start of ops. ops is
// not copied or mutated; the iterator only reads from it.
func NewOpIterator(ops []Op) *OpIterator {
	return &OpIterator{ops: ops}
}

// HasNext reports whether there is a finite amount of input left — false
// exactly when PeekLength is infinite.
func (it *OpIterator) HasNext() bool {
	return it.PeekLength() < infiniteLength
}

// Peek returns the op at the current position without advancing, and false
// if the iterator is at the end.
func (it *OpIterator) Peek() (Op, bool) {
	if it.index >= len(it.ops) {
		return Op{}, false
	}
	return it.ops[it.index], true
}

// PeekLength returns how much of the current op is left to consume, or
// infiniteLength if the iterator is past the end.
func (it *OpIterator) PeekLength() int {
	op, ok := it.Peek()
	if !ok {
		return infiniteLength
	}
	return op.Length() - it.offset
}

// PeekType returns the Kind of the current op, or KindRetain if the
// iterator is past the end — an exhausted stream behaves as an implicit
// infinite retain so algebraic loops don't need a special case for it.
func (it *OpIterator) PeekType() Kind {
	if op, ok := it.Peek(); ok {
		return op.Kind
	}
	return KindRetain
}

// Next consumes and returns an op whose length is min(length, remaining of
// the current op), advancing the cursor. A length of infiniteLength or
// more (which is what NextAll passes) consumes the whole remainder of the
// current op. Text inserts are sliced on UTF-16 code-unit boundaries;
// embeds and numeric deletes/retains carry length as the asked-for count;
// embeds always report a length of exactly 1, so length must be 1 when the
// current op is an embed.
func (it *OpIterator) Next(length int) Op {
	op, ok := it.Peek()
	if !ok {
		return Op{Kind: KindRetain, N: infiniteLength}
	}

	opLength := op.Length()
	offset := it.offset
	if length >= opLength-offset {
		length = opLength - offset
		it.index++
		it.offset = 0
	} else {
		it.offset += length
	}

	if op.Kind == KindDelete {
		return Op{Kind: KindDelete, N: length}
	}

	attrs := stripColor(op.Attrs)
	result := Op{Kind: op.Kind, Attrs: attrs}

	switch {
	case !op.Embed.IsZero():
		result.Embed = op.Embed
	case op.Kind == KindRetain:
		result.N = length
	default: // KindInsert of text
		result.Text = sliceUTF16(op.Text, offset, length)
	}
	return result
}

// PeekRemainingText returns the not-yet-consumed suffix of the current op's
// inserted text, and true if the current op is a plain text insert (as
// opposed to an embed, delete, or retain). Line-oriented consumers
// (each_line/iter_lines style helpers) use this to search for a delimiter
// without consuming characters they don't end up needing.
func (it *OpIterator) PeekRemainingText() (string, bool) {
	op, ok := it.Peek()
	if !ok || op.Kind != KindInsert || !op.Embed.IsZero() {
		return "", false
	}
	return sliceUTF16(op.Text, it.offset, utf16Len(op.Text)-it.offset), true
}

// NextAll is Next(infiniteLength): consume the rest of the current op.
func (it *OpIterator) NextAll() Op {
	return it.Next(infiniteLength)
}

// Rest returns, without mutating the iterator, every remaining op: the
// current op sliced from the current offset onward, followed by every op
// after it.
func (it *OpIterator) Rest() []Op {
	if !it.HasNext() {
		return nil
	}
	if it.offset == 0 {
		rest := make([]Op, len(it.ops)-it.index)
		copy(rest, it.ops[it.index:])
		return rest
	}
	savedIndex, savedOffset := it.index, it.offset
	first := it.NextAll()
	rest := make([]Op, 0, len(it.ops)-it.index+1)
	rest = append(rest, first)
	rest = append(rest, it.ops[it.index:]...)
	it.index, it.offset = savedIndex, savedOffset
	return rest
}

func stripColor(attrs AttrMap) AttrMap {
	if !StripUnsetColor {
		return cloneAttrMap(attrs)
	}
	v, ok := attrs["color"]
	if !ok {
		return cloneAttrMap(attrs)
	}
	if s, isStr := v.(string); !isStr || (s != "unset" && s != "windowtext") {
		return cloneAttrMap(attrs)
	}
	out := make(AttrMap, len(attrs)-1)
	for k, v := range attrs {
		if k == "color" {
			continue
		}
		out[k] = v
	}
	return emptyToNil(out)
}
