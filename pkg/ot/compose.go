package ot

// Compose folds two change sets into one equivalent change set: applying
// Compose(a, b) to a document should have the same effect as applying a
// and then b in sequence (spec §4.4).
//
// registry resolves embed handlers for any typed-embed retains the two
// streams carry; pass nil if neither change set uses embeds.
func Compose(a, b *ChangeSet, registry *Registry) (*ChangeSet, error) {
	selfIt := a.Iterator()
	otherIt := b.Iterator()
	result := New()

	// Head optimization: a leading bare retain on the b side doesn't touch
	// whatever of a's leading inserts it covers, so copy those straight
	// through instead of routing them through the slower general loop.
	if firstOther, ok := otherIt.Peek(); ok && firstOther.Kind == KindRetain &&
		firstOther.Embed.IsZero() && len(firstOther.Attrs) == 0 {
		firstLeft := firstOther.N
		for selfIt.PeekType() == KindInsert && selfIt.PeekLength() <= firstLeft {
			firstLeft -= selfIt.PeekLength()
			result.Ops = append(result.Ops, selfIt.NextAll())
		}
		if firstOther.N-firstLeft > 0 {
			otherIt.Next(firstOther.N - firstLeft)
		}
	}

	for selfIt.HasNext() || otherIt.HasNext() {
		if otherIt.PeekType() == KindInsert {
			result.Push(otherIt.NextAll())
			continue
		}
		if selfIt.PeekType() == KindDelete {
			result.Push(selfIt.NextAll())
			continue
		}

		length := min(selfIt.PeekLength(), otherIt.PeekLength())
		selfOp := selfIt.Next(length)
		otherOp := otherIt.Next(length)

		switch otherOp.Kind {
		case KindRetain:
			newOp, err := composeOntoRetain(selfOp, otherOp, length, registry)
			if err != nil {
				return nil, err
			}
			result.Push(newOp)

			if !otherIt.HasNext() && len(result.Ops) > 0 && result.Ops[len(result.Ops)-1].Equal(newOp) {
				rest := &ChangeSet{Ops: selfIt.Rest()}
				return result.Concat(rest).Chop(), nil
			}
		case KindDelete:
			if selfOp.Kind == KindRetain {
				result.Push(otherOp)
			}
			// selfOp.Kind == KindInsert and otherOp is delete: they cancel,
			// nothing is emitted.
		}
	}
	return result.Chop(), nil
}

// composeOntoRetain builds the op produced when the b-side slice is a
// retain (numeric or embed): the output carries the a-side's payload
// (insert text/embed, or retain count/embed) at the common length, with
// attributes composed via ComposeAttr(keepNull = a-side is itself a
// retain) so an attribute-clearing retain survives onto a later retain but
// collapses into a literal insert.
func composeOntoRetain(selfOp, otherOp Op, length int, registry *Registry) (Op, error) {
	keepNull := selfOp.Kind == KindRetain
	attrs := ComposeAttr(selfOp.Attrs, otherOp.Attrs, keepNull)

	if otherOp.Embed.IsZero() {
		// Plain numeric retain on the b side.
		switch selfOp.Kind {
		case KindRetain:
			if selfOp.Embed.IsZero() {
				return Op{Kind: KindRetain, N: length, Attrs: attrs}, nil
			}
			return Op{Kind: KindRetain, Embed: selfOp.Embed, Attrs: attrs}, nil
		default: // insert (text or embed) passes through unchanged in kind
			if selfOp.Embed.IsZero() {
				return Op{Kind: KindInsert, Text: selfOp.Text, Attrs: attrs}, nil
			}
			return Op{Kind: KindInsert, Embed: selfOp.Embed, Attrs: attrs}, nil
		}
	}

	// Embed retain on the b side: the a side must be a matching-typed
	// insert-embed or retain-embed; the output is single-unit, of the
	// a-side's kind, whose payload is handler.Compose(a, b, a-is-retain).
	if selfOp.Embed.IsZero() {
		return Op{}, ErrTypeMismatch
	}
	embedType, err := matchEmbedTypes(selfOp.Embed, otherOp.Embed)
	if err != nil {
		return Op{}, err
	}
	handler, err := registry.Handler(embedType)
	if err != nil {
		return Op{}, err
	}
	data, err := handler.Compose(selfOp.Embed.Data, otherOp.Embed.Data, selfOp.Kind == KindRetain)
	if err != nil {
		return Op{}, err
	}
	return Op{Kind: selfOp.Kind, Embed: Embed{Type: embedType, Data: data}, Attrs: attrs}, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
