package executors

import (
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

type Done bool

// Executor executes one step of a pipeline
//
// Init initializes this executor and its children. It resolves column names
// against the child's output schema, so a step referencing an unknown column
// fails here before any row is produced. Blocking steps consume their whole
// input during Init.
// This function must be called before Next() is called!
//
// Next produces the next tuple from this executor
type Executor interface {
	Init() error
	Next() (*tuple.Tuple, Done, error)
	GetOutputSchema() *schema.Schema
}
