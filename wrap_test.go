package tortilla

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapConcreteScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		toppings Toppings
		sauce    Sauce
		want     string
	}{
		{
			"fits on one line",
			"foo bar baz",
			NewToppings().Width(80),
			&Guacamole{},
			"foo bar baz",
		},
		{
			"bullet salsa",
			"\n- foo bar baz\n",
			NewToppings().Width(8),
			&Salsa{},
			"\n- foo\n  bar\n  baz\n",
		},
		{
			"comment and bullet salsa",
			"\n  // - foo bar baz\n",
			NewToppings().Width(8),
			&Salsa{},
			"\n  // - foo\n  //   bar\n  //   baz\n",
		},
		{
			"first fit width 10",
			"a b c d e f g h i j k l m n o p qqqqqqqqq\n",
			NewToppings().Width(10),
			&Guacamole{},
			"a b c d e\nf g h i j\nk l m n o\np\nqqqqqqqqq\n",
		},
		{
			"optimal fit width 10",
			"a b c d e f g h i j k l m n o p qqqqqqqqq\n",
			NewToppings().Width(10),
			&Salsa{},
			"a b c d\ne f g h\ni j k l\nm n o p\nqqqqqqqqq\n",
		},
		{
			"tab indented comment bullet guacamole",
			"\t\t# - foo bar baz\n",
			NewToppings().Width(10),
			&Guacamole{},
			"\t\t# - foo\n\t\t#   bar\n\t\t#   baz\n",
		},
		{
			"tab indented comment bullet salsa",
			"\t\t# - foo bar baz\n",
			NewToppings().Width(10),
			&Salsa{},
			"\t\t# - foo\n\t\t#   bar\n\t\t#   baz\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapString(tt.input, tt.toppings, tt.sauce))
		})
	}
}

func TestWrapCRLF(t *testing.T) {
	got := WrapString("\n- foo bar baz\n", NewToppings().Width(8).Newline(CRLF), &Salsa{})
	assert.Equal(t, "\r\n- foo\r\n  bar\r\n  baz\r\n", got)
}

func TestWrapIdempotentAtLargeWidth(t *testing.T) {
	inputs := []string{
		"foo bar baz\nqux quux\n",
		"- a bullet paragraph with several words\n  continued here\n",
		"// a commented paragraph that goes on\n// and continues\n",
	}
	for _, input := range inputs {
		for _, sauce := range []Sauce{&Guacamole{}, &Salsa{}} {
			once := WrapString(input, NewToppings().Width(1000), sauce)
			twice := WrapString(once, NewToppings().Width(1000), sauce)
			assert.Equal(t, once, twice, "input=%q sauce=%T", input, sauce)
		}
	}
}

func TestWrapWidthBound(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog and then keeps walking onward\n"
	for _, sauce := range []Sauce{&Guacamole{}, &Salsa{}} {
		out := WrapString(input, NewToppings().Width(20), sauce)
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			if len(strings.Fields(line)) <= 1 {
				continue // a lone overflowing word may exceed width
			}
			assert.LessOrEqual(t, widthCJK(line), 20, "line %q exceeds width", line)
		}
	}
}

func TestWrapWidthBoundWithGraphemeClusters(t *testing.T) {
	// Each word is a ZWJ family emoji sequence: one grapheme cluster,
	// several code points. Every output line holding more than one such
	// word must stay within the width budget.
	family := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	words := make([]string, 6)
	for i := range words {
		words[i] = family
	}
	input := strings.Join(words, " ") + "\n"

	for _, sauce := range []Sauce{&Guacamole{}, &Salsa{}} {
		out := WrapString(input, NewToppings().Width(10), sauce)
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			if len(strings.Fields(line)) <= 1 {
				continue
			}
			assert.LessOrEqual(t, widthCJK(line), 10, "line %q exceeds width", line)
		}
	}
}

func TestWrapOverflowingWordStaysOnOwnLine(t *testing.T) {
	out := WrapString("thiswordisverylongandoverflows short\n", NewToppings().Width(8), &Guacamole{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, []string{"thiswordisverylongandoverflows", "short"}, lines)
}

func TestWrapZeroWidthOneWordPerLine(t *testing.T) {
	out := WrapString("foo bar baz\n", NewToppings().Width(0), &Guacamole{})
	assert.Equal(t, "foo\nbar\nbaz\n", out)
}

func TestWrapStopsEarly(t *testing.T) {
	var seen int
	for range Wrap("foo bar baz qux\n", NewToppings().Width(4), &Guacamole{}) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestWriteTo(t *testing.T) {
	var b strings.Builder
	n, err := WriteTo(&b, "foo bar", NewToppings(), &Guacamole{})
	require.NoError(t, err)
	assert.Equal(t, int64(len("foo bar")), n)
	assert.Equal(t, "foo bar", b.String())
}
