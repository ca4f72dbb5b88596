package tortilla

import "iter"

// wrapState names the states of the per-line emission state machine in
// spec §4.4.
type wrapState int

const (
	stateWords wrapState = iota
	stateIndent
	stateComment
	statePadding
	stateBullet
	stateBulletSpace
	stateFinal
)

// lineWrap runs the emission state machine for one logical line,
// replicating that line's structural prefix on every wrapped
// continuation and deferring break decisions to a Sauce.
type lineWrap struct {
	line     Line
	toppings Toppings
	sauce    Sauce

	state         wrapState
	wordIdx       int
	whitespaceIdx int
	pending       *string
	bulletWidth   int
}

func newLineWrap(line Line, toppings Toppings, sauce Sauce) *lineWrap {
	lw := &lineWrap{line: line, toppings: toppings, sauce: sauce}

	if line.HasBullet {
		lw.bulletWidth = widthCJK(line.Bullet) + 1
	}

	unbreakable := lw.unbreakableWidth()
	breakable := toppings.width - unbreakable
	if breakable < 0 {
		breakable = 0
	}

	if len(line.Words) > 0 {
		lw.state = stateWords
		sauce.Prepare(line.Words, breakable)
	} else {
		lw.state = stateIndent
	}

	return lw
}

// unbreakableWidth is the width of the indent/comment/padding/bullet
// prefix that every output sub-line must carry (spec §4.4).
func (lw *lineWrap) unbreakableWidth() int {
	n := whitespaceUnitWidth(lw.line.Indent, lw.toppings) * lw.line.Indent.N
	if lw.line.HasComment {
		n += widthCJK(lw.line.Comment)
	}
	n += whitespaceUnitWidth(lw.line.Padding, lw.toppings) * lw.line.Padding.N
	if lw.line.HasBullet {
		n += widthCJK(lw.line.Bullet) + 1
	}
	return n
}

func whitespaceUnitWidth(ws Whitespace, toppings Toppings) int {
	if ws.Kind == WhitespaceTab {
		return toppings.tabs
	}
	return 1
}

// next advances the state machine by one output fragment. ok is false
// once the line's wrap is exhausted.
func (lw *lineWrap) next() (tok Token, ok bool) {
	for {
		switch lw.state {
		case stateWords:
			if lw.pending != nil {
				w := *lw.pending
				lw.pending = nil
				return Token{Kind: KindWord, Word: w}, true
			}

			if lw.wordIdx >= len(lw.line.Words) {
				lw.state = stateFinal
				if lw.line.Newline {
					return Token{Kind: KindNewline, Newline: lw.toppings.newline}, true
				}
				continue
			}

			brk := lw.sauce.ShouldBreak(lw.line.Words, lw.wordIdx)
			word := lw.line.Words[lw.wordIdx]
			lw.wordIdx++
			lw.pending = &word

			if lw.wordIdx == 1 {
				lw.state = stateIndent
				continue
			}
			if brk {
				lw.state = stateIndent
				return Token{Kind: KindNewline, Newline: lw.toppings.newline}, true
			}
			return Token{Kind: KindSpace}, true

		case stateIndent:
			if lw.whitespaceIdx == lw.line.Indent.N {
				lw.whitespaceIdx = 0
				lw.state = stateComment
				continue
			}
			lw.whitespaceIdx++
			return Token{Kind: kindOf(lw.line.Indent.Kind)}, true

		case stateComment:
			lw.state = statePadding
			if lw.line.HasComment {
				return Token{Kind: KindWord, Word: lw.line.Comment}, true
			}
			continue

		case statePadding:
			if lw.whitespaceIdx == lw.line.Padding.N {
				lw.whitespaceIdx = 0
				lw.state = stateBullet
				continue
			}
			lw.whitespaceIdx++
			return Token{Kind: kindOf(lw.line.Padding.Kind)}, true

		case stateBullet:
			if !lw.line.HasBullet {
				lw.state = stateWords
				continue
			}
			if lw.pending == nil {
				lw.state = stateWords
				return Token{Kind: KindWord, Word: lw.line.Bullet}, true
			}
			if lw.wordIdx == 1 {
				lw.state = stateBulletSpace
				lw.whitespaceIdx = lw.bulletWidth - 1
				if lw.whitespaceIdx < 0 {
					lw.whitespaceIdx = 0
				}
				return Token{Kind: KindWord, Word: lw.line.Bullet}, true
			}
			lw.state = stateBulletSpace
			lw.whitespaceIdx = 0
			continue

		case stateBulletSpace:
			if lw.whitespaceIdx == lw.bulletWidth {
				lw.whitespaceIdx = 0
				lw.state = stateWords
				continue
			}
			lw.whitespaceIdx++
			return Token{Kind: KindSpace}, true

		case stateFinal:
			return Token{}, false
		}
	}
}

func kindOf(wk WhitespaceKind) Kind {
	if wk == WhitespaceTab {
		return KindTab
	}
	return KindSpace
}

// Wrap composes Tokenize, Parse, Merge and the per-line wrap state
// machine into the single driver the package exposes: a lazy sequence of
// output fragments whose concatenation is the fully wrapped text. On each
// step it advances the current lineWrap; when a line is exhausted it
// pulls the next merged line and starts a fresh lineWrap.
func Wrap(input string, toppings Toppings, sauce Sauce) iter.Seq[Token] {
	lines := Merge(Parse(Tokenize(input)))

	return func(yield func(Token) bool) {
		next, stop := iter.Pull(lines)
		defer stop()

		var current *lineWrap
		for {
			if current == nil {
				line, ok := next()
				if !ok {
					return
				}
				current = newLineWrap(line, toppings, sauce)
			}

			tok, ok := current.next()
			if !ok {
				current = nil
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}
