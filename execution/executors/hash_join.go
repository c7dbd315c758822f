package executors

import (
	"github.com/ryogrid/QueryRunner/container/hash"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

// hashJoinMatches builds a hash table over the smaller side (left on ties)
// and probes it with every tuple of the other side in order. Tuples sharing
// a bucket are compared before a match is emitted.
func hashJoinMatches(left []*tuple.Tuple, right []*tuple.Tuple, leftKeyIdx uint32, rightKeyIdx uint32) []joinMatch {
	buildLeft := len(left) <= len(right)
	build, probe := left, right
	buildKeyIdx, probeKeyIdx := leftKeyIdx, rightKeyIdx
	if !buildLeft {
		build, probe = right, left
		buildKeyIdx, probeKeyIdx = rightKeyIdx, leftKeyIdx
	}

	ht := make(map[uint32][]int, len(build))
	for pos := range build {
		key := keyAt(build, pos, buildKeyIdx)
		h := hash.HashValue(&key)
		ht[h] = append(ht[h], pos)
	}

	matches := make([]joinMatch, 0)
	for probePos := range probe {
		key := keyAt(probe, probePos, probeKeyIdx)
		for _, buildPos := range ht[hash.HashValue(&key)] {
			if !keyAt(build, buildPos, buildKeyIdx).CompareEquals(key) {
				continue
			}
			if buildLeft {
				matches = append(matches, joinMatch{First: buildPos, Second: probePos})
			} else {
				matches = append(matches, joinMatch{First: probePos, Second: buildPos})
			}
		}
	}
	return matches
}
