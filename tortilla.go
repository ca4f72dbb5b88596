package tortilla

import (
	"io"
	"strings"
)

// WrapString runs Wrap and concatenates every yielded fragment into a
// single string.
func WrapString(input string, toppings Toppings, sauce Sauce) string {
	var b strings.Builder
	for tok := range Wrap(input, toppings, sauce) {
		b.WriteString(tok.String())
	}
	return b.String()
}

// WriteTo runs Wrap and writes every yielded fragment to w, returning the
// number of bytes written and the first write error encountered, if any.
func WriteTo(w io.Writer, input string, toppings Toppings, sauce Sauce) (int64, error) {
	var total int64
	for tok := range Wrap(input, toppings, sauce) {
		n, err := io.WriteString(w, tok.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
