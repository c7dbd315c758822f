package table

import (
	"strings"

	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

// Relation is an ordered set of tuples sharing one schema. A relation is
// never modified once built, operators always return a new one, so it can be
// shared between goroutines without locking.
type Relation struct {
	schema_ *schema.Schema
	tuples  []*tuple.Tuple
}

func NewRelation(schema_ *schema.Schema, tuples []*tuple.Tuple) *Relation {
	return &Relation{schema_, tuples}
}

func (r *Relation) Schema() *schema.Schema {
	return r.schema_
}

// Tuples returns the relation's rows. Callers must not modify the slice.
func (r *Relation) Tuples() []*tuple.Tuple {
	return r.tuples
}

func (r *Relation) GetTuple(idx int) *tuple.Tuple {
	return r.tuples[idx]
}

func (r *Relation) GetRowCount() int {
	return len(r.tuples)
}

func (r *Relation) IsEmpty() bool {
	return len(r.tuples) == 0
}

// ToString renders the header line followed by one line per row, each line
// terminated by a newline.
func (r *Relation) ToString() string {
	var sb strings.Builder
	sb.WriteString(r.schema_.ToString())
	sb.WriteByte('\n')
	for _, tuple_ := range r.tuples {
		sb.WriteString(tuple_.ToString())
		sb.WriteByte('\n')
	}
	return sb.String()
}
