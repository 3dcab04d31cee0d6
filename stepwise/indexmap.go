// SPDX-License-Identifier: MIT

package stepwise

import (
	"fmt"
	"slices"
)

// IndexMap maps the current column position of a pruned design matrix to the
// column index the caller originally supplied.
//
// An IndexMap is a value: Remove returns a new map and never touches the
// receiver, so the map handed to one pruning round cannot be altered by the next.
type IndexMap struct {
	orig []int
}

// Identity returns the map of an unpruned design with n columns.
func Identity(n int) IndexMap {
	orig := make([]int, n)
	for i := range orig {
		orig[i] = i
	}

	return IndexMap{orig: orig}
}

// Len returns the number of columns still present.
func (m IndexMap) Len() int { return len(m.orig) }

// Original returns the original index of the column currently at pos.
func (m IndexMap) Original(pos int) (int, error) {
	if pos < 0 || pos >= len(m.orig) {
		return 0, fmt.Errorf("IndexMap.Original(%d): %w", pos, ErrOutOfRange)
	}

	return m.orig[pos], nil
}

// Position returns the current position of an original column, or false when
// that column has been removed.
func (m IndexMap) Position(original int) (int, bool) {
	i, ok := slices.BinarySearch(m.orig, original)

	return i, ok
}

// Originals returns a copy of the surviving original indices in position order.
func (m IndexMap) Originals() []int { return slices.Clone(m.orig) }

// Remove drops the given current positions and returns the remapped map.
// Every column after a removed one moves down by one position per removal;
// its original index is unchanged.
//
// Errors: ErrOutOfRange (position invalid or repeated).
// Complexity: O(len + k·log k).
func (m IndexMap) Remove(positions ...int) (IndexMap, error) {
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(m.orig) {
			return IndexMap{}, fmt.Errorf("IndexMap.Remove(%d): %w", p, ErrOutOfRange)
		}
		if _, dup := drop[p]; dup {
			return IndexMap{}, fmt.Errorf("IndexMap.Remove(%d) repeated: %w", p, ErrOutOfRange)
		}
		drop[p] = struct{}{}
	}

	out := make([]int, 0, len(m.orig)-len(drop))
	for p, o := range m.orig {
		if _, gone := drop[p]; !gone {
			out = append(out, o)
		}
	}

	return IndexMap{orig: out}, nil
}
