package textmetrics

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TweetLimit is the character count below which text fits in a single post.
const TweetLimit = 280

// Metrics holds the derived counts for a piece of text.
type Metrics struct {
	Characters int `json:"characters"`
	Bytes      int `json:"bytes"`
	Words      int `json:"words"`
	Lines      int `json:"lines"`
}

// Compute derives all counts from text. The empty string yields zero values.
func Compute(text string) Metrics {
	if text == "" {
		return Metrics{}
	}
	return Metrics{
		Characters: uniseg.GraphemeClusterCount(text),
		Bytes:      len(text),
		Words:      len(strings.Fields(text)),
		Lines:      countLines(text),
	}
}

// Tweetable reports whether the character count is under TweetLimit.
func (m Metrics) Tweetable() bool {
	return m.Characters < TweetLimit
}

// countLines counts newline-terminated segments. A trailing segment without a
// newline still counts as a line.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}
	return lines
}
