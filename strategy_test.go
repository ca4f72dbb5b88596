package tortilla

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func breaksFor(sauce Sauce, words []string, max int) []bool {
	sauce.Prepare(words, max)
	out := make([]bool, len(words))
	for i := range words {
		out[i] = sauce.ShouldBreak(words, i)
	}
	return out
}

func TestGuacamoleFirstWordAlwaysBreaks(t *testing.T) {
	words := []string{"a", "b", "c"}
	got := breaksFor(&Guacamole{}, words, 80)
	assert.True(t, got[0])
}

func TestGuacamoleExactFitForcesNewLine(t *testing.T) {
	// width budget exactly 3, word "abc" is width 3 and fills it; for the
	// second identical word 3+3 < 3 is false, so it must start a new line.
	words := []string{"abc", "abc"}
	got := breaksFor(&Guacamole{}, words, 3)
	assert.Equal(t, []bool{true, true}, got)
}

func TestGuacamoleZeroWidthBreaksEveryWord(t *testing.T) {
	words := []string{"a", "b", "c"}
	got := breaksFor(&Guacamole{}, words, 0)
	assert.Equal(t, []bool{true, true, true}, got)
}

func TestSalsaMinimizesRaggedness(t *testing.T) {
	words := []string{"foo", "bar", "baz"}
	got := breaksFor(&Salsa{}, words, 8)
	assert.Equal(t, []bool{false, false, true}, got)
}

func TestSalsaOverflowingWordGetsOwnLine(t *testing.T) {
	words := []string{"foo", "bar", "baz"}
	got := breaksFor(&Salsa{}, words, 1)
	assert.Equal(t, []bool{false, true, true}, got)
}

func TestStrategiesAgreeWhenEverythingFitsOneLine(t *testing.T) {
	words := []string{"foo", "bar", "baz"}
	g := breaksFor(&Guacamole{}, words, 80)
	s := breaksFor(&Salsa{}, words, 80)
	// The wrapper ignores the answer for the first word: Guacamole says
	// true there and Salsa false. Every later answer must agree.
	assert.False(t, s[0])
	assert.Equal(t, g[1:], s[1:])
	for i, brk := range g {
		if i == 0 {
			assert.True(t, brk)
			continue
		}
		assert.False(t, brk)
	}
}

func TestSalsaEmptyWords(t *testing.T) {
	assert.NotPanics(t, func() {
		breaksFor(&Salsa{}, nil, 10)
	})
}
