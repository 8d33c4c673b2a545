package ot

// Transform rebases other so that applying self then Transform(self,
// other, priority) has the effect other was meant to have when applied
// after self, even though both were built against the same base document
// (spec §4.7). priority breaks ties when self and other both insert at the
// same position: true means self's insert is considered to have happened
// first.
//
// registry resolves embed handlers for any matching-typed-embed retains
// the two streams both carry; pass nil if neither uses embeds.
func Transform(self, other *ChangeSet, priority bool, registry *Registry) (*ChangeSet, error) {
	selfIt := self.Iterator()
	otherIt := other.Iterator()
	result := New()

	for selfIt.HasNext() || otherIt.HasNext() {
		if selfIt.PeekType() == KindInsert && (priority || otherIt.PeekType() != KindInsert) {
			result.Retain(selfIt.NextAll().Length(), nil)
			continue
		}
		if otherIt.PeekType() == KindInsert {
			result.Push(otherIt.NextAll())
			continue
		}

		length := min(selfIt.PeekLength(), otherIt.PeekLength())
		selfOp := selfIt.Next(length)
		otherOp := otherIt.Next(length)

		switch {
		case selfOp.Kind == KindDelete:
			// Our delete either makes their delete redundant or removes
			// their retain outright; either way nothing survives.
		case otherOp.Kind == KindDelete:
			result.Push(otherOp)
		default:
			embed, useEmbed, err := transformRetainEmbed(selfOp, otherOp, priority, registry)
			if err != nil {
				return nil, err
			}
			attrs := TransformAttr(selfOp.Attrs, otherOp.Attrs, priority)
			if useEmbed {
				result.RetainEmbed(embed, attrs)
			} else {
				result.Retain(length, attrs)
			}
		}
	}
	return result.Chop(), nil
}

// transformRetainEmbed decides the payload for a both-retain step. If
// other carries an embed, it is retained verbatim unless self also carries
// an embed, in which case the two embed types must match
// (ErrEmbedTypeMismatch otherwise) and the handler's Transform rebases
// it. If only self carries an embed (other is numeric), the step is a
// plain numeric retain — self's embed payload does not appear in the
// output at all, the same way a plain retain never echoes back what it
// retained.
func transformRetainEmbed(selfOp, otherOp Op, priority bool, registry *Registry) (Embed, bool, error) {
	if otherOp.Embed.IsZero() {
		return Embed{}, false, nil
	}
	embed := otherOp.Embed
	if !selfOp.Embed.IsZero() {
		embedType, err := matchEmbedTypes(selfOp.Embed, otherOp.Embed)
		if err != nil {
			return Embed{}, false, err
		}
		handler, err := registry.Handler(embedType)
		if err != nil {
			return Embed{}, false, err
		}
		data, err := handler.Transform(selfOp.Embed.Data, otherOp.Embed.Data, priority)
		if err != nil {
			return Embed{}, false, err
		}
		embed = Embed{Type: embedType, Data: data}
	}
	return embed, true, nil
}

// TransformPosition rebases a caret position against self: for each
// operation in self, deletes starting before index pull it back, and
// inserts occurring before index (or at index when priority is false) push
// it forward. Retains never move it.
func TransformPosition(self *ChangeSet, index int, priority bool) int {
	it := self.Iterator()
	offset := 0
	for it.HasNext() && offset <= index {
		length := it.PeekLength()
		kind := it.PeekType()
		it.NextAll()

		switch kind {
		case KindDelete:
			d := length
			if index-offset < d {
				d = index - offset
			}
			index -= d
			continue
		case KindInsert:
			if offset < index || !priority {
				index += length
			}
		}
		offset += length
	}
	return index
}
