package tortilla

import "iter"

// Merge folds adjacent physical lines that represent continuations of the
// same logical paragraph into a single Line whose Words are the
// concatenation of the merged inputs, per the should_merge predicate in
// spec §4.3.
func Merge(lines iter.Seq[Line]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		next, stop := iter.Pull(lines)
		defer stop()

		upper, ok := next()
		if !ok {
			return
		}

		for {
			lower, ok := next()
			if !ok {
				yield(upper)
				return
			}
			if shouldMerge(upper, lower) {
				upper.Words = append(upper.Words, lower.Words...)
				upper.Newline = upper.Newline && lower.Newline
				continue
			}
			if !yield(upper) {
				return
			}
			upper = lower
		}
	}
}

func shouldMerge(upper, lower Line) bool {
	if len(upper.Words) == 0 || len(lower.Words) == 0 {
		return false
	}
	if lower.HasBullet {
		return false
	}
	if upper.HasComment != lower.HasComment {
		return false
	}
	if upper.HasComment && upper.Comment != lower.Comment {
		return false
	}
	return continuesBullet(upper, lower)
}

// continuesBullet implements the continuation-of-bullet test: a
// bullet-less upper line requires identical indent and padding; a
// bulleted upper line requires the lower line's chosen slot to visually
// align under the first word of the bullet item.
func continuesBullet(upper, lower Line) bool {
	if !upper.HasBullet {
		return upper.Padding == lower.Padding && upper.Indent == lower.Indent
	}

	bulletWidth := widthCJK(upper.Bullet) + 1

	var upperSlot, lowerSlot Whitespace
	if upper.Indent == lower.Indent {
		upperSlot, lowerSlot = upper.Padding, lower.Padding
	} else {
		upperSlot, lowerSlot = upper.Indent, lower.Indent
	}

	if upperSlot.Kind != WhitespaceSpace || lowerSlot.Kind != WhitespaceSpace {
		return false
	}
	return upperSlot.N+bulletWidth == lowerSlot.N
}
