// Package lines groups a change set's content into paragraphs, the way a
// rich-text editor walks a document line by line to render or to find
// block-level formatting (blockquote, code-block, list item). It wraps
// ot.ChangeSet rather than extending it, so the core algebra stays free of
// any notion of "line".
package lines

import (
	"strings"

	"github.com/coreseekdev/deltatext/pkg/ot"
)

// Line is one paragraph of a change set: the ops that make it up, the
// block-level attributes carried by the newline that terminates it, and
// its zero-based line index.
type Line struct {
	Content    *ot.ChangeSet
	Attributes ot.AttrMap
	Index      int
}

// GraphemeCount reports how many user-perceived characters (grapheme
// clusters, not UTF-16 code units) the line's plain-text runs contain.
// Embeds count as a single grapheme each. Useful for line-length limits and
// cursor math that must agree with what a person looking at the screen
// would count.
func (l Line) GraphemeCount() int {
	count := 0
	for _, op := range l.Content.Ops {
		if op.Kind != ot.KindInsert {
			continue
		}
		if !op.Embed.IsZero() {
			count++
			continue
		}
		count += CountGraphemes(op.Text)
	}
	return count
}

// codeBlockKey is the block attribute that suppresses the synthetic blank
// line a consecutive pair of newlines would otherwise produce — a
// code-block's own rendering already accounts for its internal newlines.
const codeBlockKey = "code-block"

// EachLine walks delta one paragraph at a time, calling fn for each. fn
// returning false stops the walk early, the same way a plain for-loop break
// would. delta must contain only inserts (the same requirement ot.Document
// has); EachLine fails with ot.ErrDocumentRequired otherwise.
func EachLine(delta *ot.ChangeSet, newline string, fn func(Line) bool) error {
	if newline == "" {
		newline = "\n"
	}
	it := delta.Iterator()
	line := ot.New()
	index := 0
	previousWasNewline := false

	emit := func(content *ot.ChangeSet, attrs ot.AttrMap) bool {
		l := Line{Content: content, Attributes: attrs, Index: index}
		index++
		return fn(l)
	}

	for it.HasNext() {
		if it.PeekType() != ot.KindInsert {
			return ot.ErrDocumentRequired
		}

		text, isText := it.PeekRemainingText()
		splitAt := -1
		if isText {
			splitAt = strings.Index(text, newline)
		}

		switch {
		case splitAt < 0:
			line.Push(it.NextAll())
			previousWasNewline = false
		case splitAt > 0:
			line.Push(it.Next(ot.UTF16Len(text[:splitAt])))
			previousWasNewline = false
		default:
			boundary := it.Next(ot.UTF16Len(newline))
			attrs := boundary.Attrs

			if len(line.Ops) == 0 && isCodeBlock(attrs) {
				if !emit(ot.New().Insert("\n", nil), attrs) {
					return nil
				}
			} else {
				if !emit(line, attrs) {
					return nil
				}
			}

			if previousWasNewline && !isCodeBlock(attrs) {
				if !emit(ot.New().Insert("", nil), attrs) {
					return nil
				}
			}
			line = ot.New()
			previousWasNewline = true
		}
	}

	if len(line.Ops) > 0 {
		emit(line, nil)
	}
	return nil
}

// IterLines collects the same paragraphs EachLine visits into a slice, for
// callers that would rather range over a result than pass a callback.
func IterLines(delta *ot.ChangeSet, newline string) ([]Line, error) {
	var out []Line
	err := EachLine(delta, newline, func(l Line) bool {
		out = append(out, l)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func isCodeBlock(attrs ot.AttrMap) bool {
	v, ok := attrs[codeBlockKey]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
