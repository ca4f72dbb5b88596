package tortilla

// Sauce is a pluggable line-breaking strategy. Prepare is called once per
// logical line with that line's words and the breakable width budget;
// ShouldBreak is then asked, once per word in order, whether that word
// must begin a new output line.
type Sauce interface {
	Prepare(words []string, max int)
	ShouldBreak(words []string, i int) bool
}

// Guacamole is the first-fit strategy: streaming, O(n) time, O(1) space.
// A word joins the current line only while the running width plus the
// word's width is strictly below the budget (strict "<"); the joining
// space is the one extra column, so a line may end exactly at the budget.
type Guacamole struct {
	width int
	max   int
}

func (g *Guacamole) Prepare(words []string, max int) {
	g.width = 0
	g.max = max
}

func (g *Guacamole) ShouldBreak(words []string, i int) bool {
	w := widthCJK(words[i])
	switch {
	case g.width == 0:
		g.width = w
		return true
	case g.width+w < g.max:
		g.width += w + 1
		return false
	default:
		g.width = w
		return true
	}
}

// Salsa is the optimal-fit strategy: minimum-raggedness via shortest path
// over break positions. O(n^2) time, O(n) space per line.
type Salsa struct {
	breaks map[int]bool
}

func (s *Salsa) Prepare(words []string, max int) {
	n := len(words)
	s.breaks = make(map[int]bool, n)
	if n == 0 {
		return
	}

	widths := make([]int, n)
	prefix := make([]int, n+1)
	for i, w := range words {
		widths[i] = widthCJK(w)
		prefix[i+1] = prefix[i] + widths[i]
	}

	const inf = int(^uint(0) >> 1)
	best := make([]int, n+1)
	pred := make([]int, n+1)
	for i := 1; i <= n; i++ {
		best[i] = inf
		pred[i] = -1
	}

	for i := 0; i < n; i++ {
		if best[i] == inf {
			continue
		}
		for j := i + 1; j <= n; j++ {
			lineLength := (prefix[j] - prefix[i]) + (j - i - 1)
			if lineLength > max && j > i+1 {
				break
			}

			penalty := 0
			if j != n {
				d := max - lineLength
				if d < 0 {
					d = 0
				}
				penalty = d * d
			}

			cost := best[i] + penalty
			if cost < best[j] {
				best[j] = cost
				pred[j] = i
			}
		}
	}

	at := n
	for at > 0 {
		i := pred[at]
		if i < 0 {
			break
		}
		if i > 0 {
			s.breaks[i] = true
		}
		at = i
	}
}

func (s *Salsa) ShouldBreak(words []string, i int) bool {
	return s.breaks[i]
}
