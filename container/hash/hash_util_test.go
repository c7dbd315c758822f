package hash

import (
	"testing"

	testingpkg "github.com/ryogrid/QueryRunner/testing/testing_assert"
	"github.com/ryogrid/QueryRunner/types"
)

func TestHashValueIsStable(t *testing.T) {
	a := types.NewInteger(42)
	b := types.InferValue("42")
	testingpkg.Equals(t, HashValue(&a), HashValue(&b))

	s1 := types.NewVarchar("abc")
	s2 := types.NewVarchar("abc")
	testingpkg.Equals(t, HashValue(&s1), HashValue(&s2))
}

func TestHashValueSeparatesTypes(t *testing.T) {
	// the text "7" and the integer 7 are different keys
	i := types.NewInteger(7)
	s := types.NewVarchar("7")
	testingpkg.Assert(t, HashValue(&i) != HashValue(&s), "integer and varchar hashed to the same bucket")
}

func TestGenHashMurMurSpread(t *testing.T) {
	seen := make(map[uint32]struct{})
	for i := 0; i < 1000; i++ {
		v := types.NewInteger(int64(i))
		seen[HashValue(&v)] = struct{}{}
	}
	testingpkg.Assert(t, len(seen) > 990, "too many collisions: %d distinct hashes", len(seen))
}
