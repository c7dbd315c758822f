package hash

import (
	"encoding/binary"

	"github.com/ryogrid/QueryRunner/types"
	"github.com/spaolacci/murmur3"
)

// HashValue returns the bucket hash of a cell. The serialized form carries
// the type tag, so an Integer and a Varchar with the same text hash apart.
func HashValue(val *types.Value) uint32 {
	switch val.ValueType() {
	case types.Integer, types.Varchar:
		return GenHashMurMur(val.Serialize())
	default:
		panic("not supported type!")
	}
}

func GenHashMurMur(key []byte) uint32 {
	h := murmur3.New128()
	h.Write(key)
	hash := h.Sum(nil)

	return binary.LittleEndian.Uint32(hash)
}
