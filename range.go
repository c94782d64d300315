package diggpager

import "iter"

// Range returns a lazy sequence of integers between start and end inclusive.
//
// If start <= end the sequence is ascending, otherwise it is descending. With
// excludeLast set, end is left out of the sequence. The only exception is
// start == end: the sequence is always the single element start.
//
// Each iteration of the returned sequence starts over from start.
//
// Example:
//
//	Range(1, 4, false) -> 1 2 3 4
//	Range(4, 1, true)  -> 4 3 2
//	Range(3, 3, true)  -> 3
func Range(start, end int, excludeLast bool) iter.Seq[int] {
	if start <= end {
		return ascending(start, end, excludeLast)
	}

	return descending(start, end, excludeLast)
}

func ascending(start, end int, excludeLast bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if start == end {
			yield(start)
			return
		}

		if excludeLast {
			end--
		}

		for i := start; i <= end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func descending(start, end int, excludeLast bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if excludeLast {
			end++
		}

		for i := start; i >= end; i-- {
			if !yield(i) {
				return
			}
		}
	}
}
