package executors

import (
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

// mergeJoinMatches walks two tuple lists sorted ascending on their keys.
// mark is the first right position of the run matching the current left key.
// It is kept while left tuples share that key, so each of them is paired
// with the whole run. When either cursor runs out while looking for the next
// run there are no more matches.
func mergeJoinMatches(left []*tuple.Tuple, right []*tuple.Tuple, leftKeyIdx uint32, rightKeyIdx uint32) []joinMatch {
	nl, nr := len(left), len(right)
	matches := make([]joinMatch, 0)

	l, r, mark := 0, 0, -1
	for l < nl {
		if mark < 0 {
			for l < nl && r < nr {
				leftKey, rightKey := keyAt(left, l, leftKeyIdx), keyAt(right, r, rightKeyIdx)
				if leftKey.CompareEquals(rightKey) {
					break
				}
				if leftKey.CompareLessThan(rightKey) {
					l++
				} else {
					r++
				}
			}
			if l >= nl || r >= nr {
				break
			}
			mark = r
		}

		if r < nr && keyAt(left, l, leftKeyIdx).CompareEquals(keyAt(right, r, rightKeyIdx)) {
			matches = append(matches, joinMatch{First: l, Second: r})
			r++
			continue
		}
		r = mark
		l++
		mark = -1
	}
	return matches
}
