package glyph

import (
	"math/rand/v2"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultMaxMarks bounds how many marks each pool contributes per character.
const DefaultMaxMarks = 8

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed generator that yields the same sequence for
// the same seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Zalgo mangles text by appending random combining marks to every character.
type Zalgo struct {
	src      Source
	maxMarks int
}

// ZalgoOption customizes a Zalgo transformer.
type ZalgoOption func(*Zalgo)

// WithMaxMarks sets the per-pool upper bound. Negative values are treated as 0.
func WithMaxMarks(n int) ZalgoOption {
	return func(z *Zalgo) {
		z.maxMarks = max(n, 0)
	}
}

// NewZalgo builds a transformer drawing from src. A nil src falls back to a
// randomly seeded generator.
func NewZalgo(src Source, opts ...ZalgoOption) *Zalgo {
	if src == nil {
		src = NewSource(rand.Uint64())
	}
	z := &Zalgo{src: src, maxMarks: DefaultMaxMarks}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// MaxMarks returns the per-pool upper bound in effect.
func (z *Zalgo) MaxMarks() int {
	return z.maxMarks
}

// Transform returns text with marks appended after each grapheme cluster. For
// each of the up, down and mid pools a count in [0, MaxMarks] is drawn, then
// that many marks are picked independently from the pool.
func (z *Zalgo) Transform(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) * (1 + z.maxMarks*3))

	pools := [...][]rune{upMarks, downMarks, midMarks}
	state := -1
	var cluster string
	for text != "" {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		b.WriteString(cluster)
		for _, pool := range pools {
			n := z.src.IntN(z.maxMarks + 1)
			for range n {
				b.WriteRune(pool[z.src.IntN(len(pool))])
			}
		}
	}
	return b.String()
}
