package internal

import (
	"iter"
)

// Spans splits [0, length) into at most parts contiguous, disjoint,
// half-open ranges of near-equal size, yielding start and end offsets.
func Spans(length int, parts int) iter.Seq2[int, int] {
	return func(yield func(start, end int) bool) {
		if length <= 0 {
			return
		}
		if parts < 1 {
			parts = 1
		}
		if parts > length {
			parts = length
		}

		size := length / parts
		extra := length % parts
		start := 0
		for n := range parts {
			end := start + size
			if n < extra {
				end++
			}
			if !yield(start, end) {
				return
			}
			start = end
		}
	}
}
