// Package tortilla rewraps free-form text so that every line respects a
// target display width, while faithfully reconstructing leading
// indentation, line-comment prefixes, and list-bullet markers across every
// wrapped continuation line.
//
// The package is a streaming, pull-driven pipeline of four stages:
//
//	Tokenize  - segments input into Space, Tab, Newline and Word tokens,
//	            honoring Unicode grapheme cluster boundaries.
//	Parse     - decomposes each physical line into a Line: indent, an
//	            optional comment token, padding, an optional bullet, and
//	            the line's words.
//	Merge     - folds adjacent physical lines that continue the same
//	            logical paragraph into a single Line.
//	Wrap      - re-emits each merged Line as a stream of fragments
//	            (Space, Tab, Newline, Word) that obey a configured width,
//	            using a pluggable Sauce to decide where lines break.
//
// Each stage is exposed as an iter.Seq so no stage buffers more than one
// logical paragraph at a time. Word fragments borrow their bytes directly
// from the input string for as long as the returned sequence is consumed.
package tortilla
