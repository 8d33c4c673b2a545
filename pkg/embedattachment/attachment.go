// Package embedattachment implements an ot.EmbedHandler for file
// attachments (images, uploads): opaque binary content addressed by a
// generated identifier, where compose/invert/transform only ever replace
// one attachment reference with another rather than merging their
// contents.
package embedattachment

import (
	"github.com/google/uuid"

	"github.com/coreseekdev/deltatext/pkg/ot"
)

// EmbedType is the registry key this handler is installed under.
const EmbedType = "attachment"

// Attachment is the payload carried inside an attachment embed: a stable
// reference to out-of-band content plus the metadata a renderer needs
// without fetching it.
type Attachment struct {
	ID       string
	Filename string
	MimeType string
	Size     int64
}

// New returns a new attachment reference with a freshly generated ID.
func New(filename, mimeType string, size int64) Attachment {
	return Attachment{
		ID:       uuid.New().String(),
		Filename: filename,
		MimeType: mimeType,
		Size:     size,
	}
}

// Handler implements ot.EmbedHandler for EmbedType. Attachments are atomic:
// there is nothing to merge inside one, so composing or transforming two
// attachment payloads always keeps the later one, matching how a plain
// retain-embed behaves for any payload the core algebra doesn't know how to
// recurse into.
type Handler struct{}

// Compose returns b: whichever edit happened later wins the reference.
// Both payloads must be Attachments.
func (Handler) Compose(a, b interface{}, keepNull bool) (interface{}, error) {
	if _, ok := a.(Attachment); !ok {
		return nil, ot.ErrTypeMismatch
	}
	if _, ok := b.(Attachment); !ok {
		return nil, ot.ErrTypeMismatch
	}
	return b, nil
}

// Invert returns base: undoing any change to an attachment reference
// restores whatever it pointed to beforehand.
func (Handler) Invert(delta, base interface{}) (interface{}, error) {
	if _, ok := base.(Attachment); !ok {
		return nil, ot.ErrTypeMismatch
	}
	return base, nil
}

// Transform returns b unchanged: two concurrent edits to the same
// attachment slot can't be merged, so whichever one this side is rebasing
// against simply keeps pointing at its own reference.
func (Handler) Transform(a, b interface{}, priority bool) (interface{}, error) {
	if _, ok := b.(Attachment); !ok {
		return nil, ot.ErrTypeMismatch
	}
	return b, nil
}
