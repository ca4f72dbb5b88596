package tortilla

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cjkCondition renders display width using the East Asian Width "Wide"
// variant: full-width CJK characters and ambiguous-width runes count 2
// columns, combining marks count 0, everything else its ordinary column
// width.
var cjkCondition = &runewidth.Condition{EastAsianWidth: true}

// widthCJK returns the display width of s in the CJK-Wide East Asian
// Width variant, measured per grapheme cluster (spec §4.1/§4.4): s is
// segmented with the same uniseg boundaries the tokenizer uses, and each
// cluster contributes the width of its first rune, since a multi-rune
// cluster (a ZWJ emoji sequence, a regional-indicator flag pair, a base
// rune plus combining marks) still renders as a single glyph.
func widthCJK(s string) int {
	var width int
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += clusterWidth(cluster)
	}
	return width
}

func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	return cjkCondition.RuneWidth(r)
}
