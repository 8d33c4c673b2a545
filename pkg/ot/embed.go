package ot

// EmbedHandler implements the recursive half of the algebra for one embed
// type: composing, inverting, and transforming the opaque payload nested
// inside an insert-embed or retain-embed operation. Implementations are
// pure functions of their arguments the same way the core algebra is.
type EmbedHandler interface {
	// Compose combines payload a (earlier) with payload b (later) into the
	// payload of the composed op. keepNull mirrors ComposeAttr's keepNull:
	// true when the composed op is itself a retain, false when it collapses
	// into a literal insert.
	Compose(a, b interface{}, keepNull bool) (interface{}, error)

	// Invert returns the payload that undoes applying delta on top of a
	// base payload, the embed analogue of Op-level Invert.
	Invert(delta, base interface{}) (interface{}, error)

	// Transform rebases payload b against payload a the way Transform
	// rebases a whole change set; priority has the same meaning as the
	// top-level Transform.
	Transform(a, b interface{}, priority bool) (interface{}, error)
}

// Registry is a mapping from embed-type string to the handler that knows
// how to compose/invert/transform that type's payload. The source this
// package is ported from keeps this as process-wide mutable state; here it
// is an explicit, per-call-site value so library consumers never share
// global state with each other (the open design question spec §9 flags).
// A nil *Registry is treated as empty: any embed operation on a nil
// registry fails with ErrMissingEmbedHandler.
type Registry struct {
	handlers map[string]EmbedHandler
}

// NewRegistry returns an empty, ready-to-use embed handler registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]EmbedHandler)}
}

// Register installs (or replaces) the handler for embedType.
func (r *Registry) Register(embedType string, handler EmbedHandler) {
	if r.handlers == nil {
		r.handlers = make(map[string]EmbedHandler)
	}
	r.handlers[embedType] = handler
}

// Unregister removes the handler for embedType, if any.
func (r *Registry) Unregister(embedType string) {
	if r == nil {
		return
	}
	delete(r.handlers, embedType)
}

// Handler returns the handler registered for embedType, or
// ErrMissingEmbedHandler if none is registered (including when r is nil).
func (r *Registry) Handler(embedType string) (EmbedHandler, error) {
	if r != nil {
		if h, ok := r.handlers[embedType]; ok {
			return h, nil
		}
	}
	return nil, ErrMissingEmbedHandler
}

// matchEmbedTypes checks that two embed operands agree on their embed
// type, returning it, or ErrEmbedTypeMismatch if they don't.
func matchEmbedTypes(a, b Embed) (string, error) {
	if a.Type != b.Type {
		return "", ErrEmbedTypeMismatch
	}
	return a.Type, nil
}
