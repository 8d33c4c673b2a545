package ot

// Invert returns the change set that, composed immediately after delta,
// restores base — the document delta was applied to (spec §4.6). The
// identity base.compose(delta).compose(delta.Invert(base)) == base must
// hold for any delta whose base length matches len(base).
//
// registry resolves embed handlers for any typed-embed retains delta
// carries; pass nil if delta uses no embeds.
func Invert(delta, base *ChangeSet, registry *Registry) (*ChangeSet, error) {
	inverted := New()
	i := 0

	for _, op := range delta.Ops {
		switch {
		case op.Kind == KindInsert:
			inverted.Delete(op.Length())

		case op.Kind == KindRetain && op.Embed.IsZero() && len(op.Attrs) == 0:
			inverted.Retain(op.N, nil)
			i += op.N

		case op.Kind == KindRetain && op.Embed.IsZero(): // attributed numeric retain
			window, err := base.Slice(i, i+op.N)
			if err != nil {
				return nil, err
			}
			for _, baseOp := range window.Ops {
				inverted.Retain(baseOp.Length(), InvertAttr(op.Attrs, baseOp.Attrs))
			}
			i += op.N

		case op.Kind == KindDelete:
			window, err := base.Slice(i, i+op.N)
			if err != nil {
				return nil, err
			}
			for _, baseOp := range window.Ops {
				inverted.Push(baseOp)
			}
			i += op.N

		case op.Kind == KindRetain: // embed retain
			window, err := base.Slice(i, i+1)
			if err != nil {
				return nil, err
			}
			if len(window.Ops) == 0 {
				return nil, ErrTypeMismatch
			}
			baseOp := window.Ops[0]
			embedType, err := matchEmbedTypes(op.Embed, baseOp.Embed)
			if err != nil {
				return nil, err
			}
			handler, err := registry.Handler(embedType)
			if err != nil {
				return nil, err
			}
			data, err := handler.Invert(op.Embed.Data, baseOp.Embed.Data)
			if err != nil {
				return nil, err
			}
			inverted.RetainEmbed(Embed{Type: embedType, Data: data}, InvertAttr(op.Attrs, baseOp.Attrs))
			i++
		}
	}

	return inverted.Chop(), nil
}
