package glyph

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StrikeThrough appends one long stroke overlay after every grapheme cluster,
// including whitespace and punctuation.
func StrikeThrough(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) + uniseg.GraphemeClusterCount(text)*utf8.RuneLen(strokeOverlay))

	state := -1
	var cluster string
	for text != "" {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		b.WriteString(cluster)
		b.WriteRune(strokeOverlay)
	}
	return b.String()
}

var combiningMark = runes.Predicate(func(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me)
})

// Strip removes nonspacing and enclosing combining marks and returns the NFC
// form of what remains. Accents are removed along with decorations, so
// "café" becomes "cafe".
func Strip(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(combiningMark), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
