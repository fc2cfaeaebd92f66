// Package textmetrics computes the counts shown in the editor's word count
// dialog: user-perceived characters, UTF-8 bytes, whitespace-delimited words,
// and lines.
//
// Characters are extended grapheme clusters, so an emoji with skin tone or a
// letter followed by combining marks counts once. Every call derives its result
// from the input alone; nothing is cached.
package textmetrics
