package ot

import "errors"

// Sentinel errors returned by the change-set algebra. All failures are
// reported eagerly; none of the algebraic methods mutate their receiver or
// argument before returning one of these.
var (
	// ErrTypeMismatch is returned when an operand has the wrong shape: an
	// embed retain in Compose lines up with an op that carries no embed, an
	// embed retain in Invert has no base op under it, or an EmbedHandler is
	// given a payload of a Go type it does not handle.
	ErrTypeMismatch = errors.New("ot: operand has the wrong shape for an embed or retain")

	// ErrEmbedTypeMismatch is returned when compose/invert/transform are
	// asked to combine two embed operands declaring different embed types.
	ErrEmbedTypeMismatch = errors.New("ot: embed type mismatch between operands")

	// ErrMissingEmbedHandler is returned when no handler is registered for
	// an embed type encountered during compose/invert/transform.
	ErrMissingEmbedHandler = errors.New("ot: no handler registered for embed type")

	// ErrDocumentRequired is returned by Diff when either operand contains
	// a non-insert operation.
	ErrDocumentRequired = errors.New("ot: diff requires both change sets to contain only inserts")

	// ErrUnsupportedSliceStep is returned by SliceStep when asked for a
	// stride other than 1.
	ErrUnsupportedSliceStep = errors.New("ot: slicing with a non-unit step is not supported")

	// ErrNegativeIndex is returned when a slice bound is negative.
	ErrNegativeIndex = errors.New("ot: negative slice bounds are not supported")

	// ErrMalformedDelta is returned by Document() when the change set
	// contains a non-insert operation.
	ErrMalformedDelta = errors.New("ot: document() requires a change set containing only inserts")

	// ErrZeroLengthDiffSegment is returned when the character-diff
	// collaborator reports a zero-length segment. The source this package
	// is ported from treats that silently as "stop early"; a zero-length
	// segment from a well-behaved differ should never happen, so deltatext
	// surfaces it as the invariant violation it is instead.
	ErrZeroLengthDiffSegment = errors.New("ot: character diff collaborator reported a zero-length segment")
)
