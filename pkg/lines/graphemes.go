package lines

import "github.com/clipperhouse/uax29/graphemes"

// CountGraphemes reports the number of user-perceived characters in s —
// grapheme clusters per Unicode text segmentation, not bytes, runes, or
// UTF-16 code units. A combining accent, a flag, or an emoji family all
// count as one.
func CountGraphemes(s string) int {
	count := 0
	segments := graphemes.SegmentAllString(s)
	for range segments {
		count++
	}
	return count
}
