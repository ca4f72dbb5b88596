package tortilla

// Default configuration values, per spec §3.
const (
	DefaultWidth    = 80
	DefaultTabWidth = 4
)

// Toppings is the immutable configuration for a wrap: the target column
// width, the display width of a tab, and the newline style to emit.
// Toppings is built fluently; every setter returns a modified copy,
// leaving the receiver untouched.
type Toppings struct {
	width   int
	tabs    int
	newline Newline
}

// NewToppings returns the default configuration: 80 columns wide, tabs
// displaying as 4 columns, LF newlines.
func NewToppings() Toppings {
	return Toppings{
		width:   DefaultWidth,
		tabs:    DefaultTabWidth,
		newline: LF,
	}
}

// Width returns a copy of t with the target column width set to n. A
// width of 0 is permitted; it yields one word per output line.
func (t Toppings) Width(n int) Toppings {
	t.width = n
	return t
}

// Tabs returns a copy of t with the display width of a tab set to n.
func (t Toppings) Tabs(n int) Toppings {
	t.tabs = n
	return t
}

// Newline returns a copy of t with the output newline style set to n.
func (t Toppings) Newline(n Newline) Toppings {
	t.newline = n
	return t
}
