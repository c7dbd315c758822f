package tuple

import (
	"strings"

	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/types"
)

// Tuple is one row of a relation. Values are held in schema order and are
// never modified after the tuple is built.
type Tuple struct {
	values []types.Value
}

// NewTupleFromSchema creates a new tuple based on input value
func NewTupleFromSchema(values []types.Value, schema_ *schema.Schema) *Tuple {
	if schema_ != nil && uint32(len(values)) != schema_.GetColumnCount() {
		panic("value count does not match the schema")
	}
	return &Tuple{values}
}

func (t *Tuple) GetValue(schema_ *schema.Schema, colIndex uint32) types.Value {
	return t.values[colIndex]
}

func (t *Tuple) GetValueAt(colIndex uint32) types.Value {
	return t.values[colIndex]
}

func (t *Tuple) Size() uint32 {
	return uint32(len(t.values))
}

// Values returns a copy of the tuple's values.
func (t *Tuple) Values() []types.Value {
	ret := make([]types.Value, len(t.values))
	copy(ret, t.values)
	return ret
}

func (t *Tuple) ToString() string {
	parts := make([]string, 0, len(t.values))
	for _, val := range t.values {
		parts = append(parts, val.ToString())
	}
	return strings.Join(parts, ",")
}
