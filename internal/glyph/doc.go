// Package glyph decorates text with Unicode combining marks.
//
// Zalgo appends a random run of marks from three pools (above, below, and
// through the base character) after every grapheme cluster. StrikeThrough
// appends a single long stroke overlay after every grapheme cluster. Strip
// removes combining marks again.
//
// Randomness is injected through Source so callers can reproduce a result from
// a seed. A Zalgo value must not be shared between goroutines unless its Source
// is safe for concurrent use.
package glyph
