package tortilla

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Kind distinguishes the four members of the token alphabet.
type Kind int

const (
	KindSpace Kind = iota
	KindTab
	KindNewline
	KindWord
)

// Newline names the two newline styles tortilla understands.
type Newline int

const (
	LF Newline = iota
	CRLF
)

func (n Newline) String() string {
	if n == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Token is a single unit of the tokenizer's output alphabet: a Space, a
// Tab, a Newline of a given style, or a Word slice borrowed from the
// original input.
type Token struct {
	Kind    Kind
	Newline Newline // meaningful only when Kind == KindNewline
	Word    string  // meaningful only when Kind == KindWord
}

// String renders the token's textual form. Concatenating the String of
// every token produced by Tokenize reconstructs the tokenized input
// exactly.
func (t Token) String() string {
	switch t.Kind {
	case KindSpace:
		return " "
	case KindTab:
		return "\t"
	case KindNewline:
		return t.Newline.String()
	case KindWord:
		return t.Word
	default:
		return ""
	}
}

// Tokenize walks input as a sequence of grapheme clusters and yields
// Space, Tab, Newline and Word tokens. A lone carriage return that is not
// immediately followed by a line feed is a word-interior grapheme; "\r\n"
// is always a single Newline token, since uniseg treats it as one
// grapheme cluster. Word slices borrow directly from input.
func Tokenize(input string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var (
			pos       int
			state     = -1
			inWord    bool
			wordStart int
		)
		for pos < len(input) {
			cluster, _, _, newState := uniseg.FirstGraphemeClusterInString(input[pos:], state)

			switch cluster {
			case " ", "\t", "\n", "\r\n":
				if inWord {
					if !yield(Token{Kind: KindWord, Word: input[wordStart:pos]}) {
						return
					}
					inWord = false
				}

				var tok Token
				switch cluster {
				case " ":
					tok = Token{Kind: KindSpace}
				case "\t":
					tok = Token{Kind: KindTab}
				case "\n":
					tok = Token{Kind: KindNewline, Newline: LF}
				case "\r\n":
					tok = Token{Kind: KindNewline, Newline: CRLF}
				}
				pos += len(cluster)
				state = newState
				if !yield(tok) {
					return
				}

			default:
				if !inWord {
					inWord = true
					wordStart = pos
				}
				pos += len(cluster)
				state = newState
			}
		}
		if inWord {
			yield(Token{Kind: KindWord, Word: input[wordStart:]})
		}
	}
}

// tokenReader adapts a pulled iter.Seq[Token] into a one-token-lookahead
// reader, the shape the line grammar's sub-rules (§4.2: whitespace,
// comment, padding, bullet, words) need: peek one token, decide, maybe
// consume.
type tokenReader struct {
	next      func() (Token, bool)
	stop      func()
	peeked    Token
	hasPeeked bool
}

func newTokenReader(tokens iter.Seq[Token]) *tokenReader {
	next, stop := iter.Pull(tokens)
	return &tokenReader{next: next, stop: stop}
}

func (r *tokenReader) peek() (Token, bool) {
	if !r.hasPeeked {
		r.peeked, r.hasPeeked = r.next()
	}
	if !r.hasPeeked {
		return Token{}, false
	}
	return r.peeked, true
}

func (r *tokenReader) advance() (Token, bool) {
	if r.hasPeeked {
		t := r.peeked
		r.hasPeeked = false
		return t, true
	}
	return r.next()
}

func (r *tokenReader) close() {
	r.stop()
}
