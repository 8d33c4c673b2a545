// Package embedscript implements an ot.EmbedHandler for spreadsheet-style
// formula embeds: a small expression evaluated in a sandboxed JavaScript
// runtime rather than interpreted by hand, the way a host application might
// let a user-authored expression run without trusting it with real
// capabilities.
package embedscript

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/coreseekdev/deltatext/pkg/ot"
)

// EmbedType is the registry key this handler is installed under.
const EmbedType = "formula"

// Formula is the payload carried inside a formula embed: a JavaScript
// expression and the variable bindings it runs against.
type Formula struct {
	Expression string
	Scope      map[string]interface{}
}

// Evaluate runs f's expression in a fresh, short-lived goja runtime seeded
// with f's scope, and returns the resulting value. Each call gets its own
// runtime: formula embeds are expected to be cheap and side-effect free,
// not long-running scripts worth pooling a VM for.
func (f Formula) Evaluate() (interface{}, error) {
	vm := goja.New()
	for name, value := range f.Scope {
		if err := vm.Set(name, value); err != nil {
			return nil, fmt.Errorf("embedscript: binding %q: %w", name, err)
		}
	}
	result, err := vm.RunString("(" + f.Expression + ")")
	if err != nil {
		return nil, fmt.Errorf("embedscript: evaluating %q: %w", f.Expression, err)
	}
	return result.Export(), nil
}

// Handler implements ot.EmbedHandler for EmbedType. A formula's expression
// text is atomic the way an attachment reference is: compose/transform
// don't merge two expressions together, they validate whichever one wins by
// actually evaluating it, so a concurrent edit that landed a syntactically
// broken expression never makes it into the composed result.
type Handler struct{}

// Compose keeps b, the later edit, after confirming it evaluates cleanly.
func (Handler) Compose(a, b interface{}, keepNull bool) (interface{}, error) {
	return validated(b)
}

// Invert returns base: undoing a formula edit restores whatever expression
// used to be there.
func (Handler) Invert(delta, base interface{}) (interface{}, error) {
	return validated(base)
}

// Transform keeps b, the operation being rebased, after confirming it still
// evaluates cleanly against its own scope; a's edit doesn't affect which
// expression b intends to install.
func (Handler) Transform(a, b interface{}, priority bool) (interface{}, error) {
	return validated(b)
}

func validated(payload interface{}) (interface{}, error) {
	f, ok := payload.(Formula)
	if !ok {
		return nil, ot.ErrTypeMismatch
	}
	if _, err := f.Evaluate(); err != nil {
		return nil, err
	}
	return f, nil
}
