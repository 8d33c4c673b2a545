package ot

// AttrMap is a string-keyed bag of operation metadata (bold, color, a
// nested embed's own attributes, ...). A key present with a nil value is
// the explicit "remove this attribute" sentinel; a key that is simply
// absent from the map carries no information at all. Callers must use the
// two-value map form (`v, ok := m[k]`) to tell them apart — `ok == false`
// means absent, `ok == true && v == nil` means the null sentinel.
//
// A nil AttrMap is treated as empty everywhere in this package.
type AttrMap map[string]interface{}

// cloneAttrMap returns a shallow copy, or nil if m is empty. Attribute
// values are treated as opaque and never mutated in place, so a shallow
// copy preserves the "algebraic methods don't alias their inputs" contract
// without needing a deep clone of arbitrary value types.
func cloneAttrMap(m AttrMap) AttrMap {
	if len(m) == 0 {
		return nil
	}
	out := make(AttrMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// emptyToNil returns nil when m has no entries, so that zero-length attribute
// maps round-trip as the "absent" state the rest of the package expects.
func emptyToNil(m AttrMap) AttrMap {
	if len(m) == 0 {
		return nil
	}
	return m
}

// ComposeAttr merges attribute map b onto a, the way the b-side of a
// compose overwrites the a-side. Every key of b is copied as-is; every key
// of a not present in b survives unchanged. When keepNull is false, keys
// whose composed value is the null sentinel are dropped entirely instead of
// being recorded as an explicit removal — composing onto a literal insert
// has no "remove attribute" semantics, only "don't have it".
func ComposeAttr(a, b AttrMap, keepNull bool) AttrMap {
	out := make(AttrMap, len(a)+len(b))
	for k, v := range b {
		if !keepNull && v == nil {
			continue
		}
		out[k] = v
	}
	for k, v := range a {
		if _, ok := b[k]; !ok {
			if !keepNull && v == nil {
				continue
			}
			out[k] = v
		}
	}
	return emptyToNil(out)
}

// DiffAttr returns the attribute map that turns a into b: for every key
// present in either map whose value differs, the result carries b's value
// (the null sentinel when b has dropped a key a had).
func DiffAttr(a, b AttrMap) AttrMap {
	out := make(AttrMap, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	for k := range seen {
		av, aok := a[k]
		bv, bok := b[k]
		_ = aok
		if !bok {
			bv = nil
		}
		if av != bv {
			out[k] = bv
		}
	}
	return emptyToNil(out)
}

// InvertAttr returns the attribute map that undoes applying attr on top of
// a base operation's attributes: every key base had that attr overwrote is
// restored to base's value, and every key attr added that base didn't have
// is marked for removal via the null sentinel.
func InvertAttr(attr, base AttrMap) AttrMap {
	out := make(AttrMap, len(attr)+len(base))
	for k, baseVal := range base {
		if attrVal, ok := attr[k]; ok && baseVal != attrVal {
			out[k] = baseVal
		}
	}
	for k := range attr {
		if _, ok := base[k]; !ok {
			out[k] = nil
		}
	}
	return emptyToNil(out)
}

// TransformAttr rebases attribute map b against a. When priority is false,
// b passes through untouched — the caller's change wins outright. When
// priority is true, a wins on any key the two maps both touch, so only b's
// keys that a doesn't mention survive.
func TransformAttr(a, b AttrMap, priority bool) AttrMap {
	if !priority {
		return emptyToNil(b)
	}
	out := make(AttrMap, len(b))
	for k, v := range b {
		if _, ok := a[k]; !ok {
			out[k] = v
		}
	}
	return emptyToNil(out)
}

// attrMapEqual reports whether two attribute maps carry the same keys and
// values, treating nil and empty maps as equal to each other.
func attrMapEqual(a, b AttrMap) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}
	return true
}
