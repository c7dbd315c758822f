package executors

import (
	"math"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"github.com/ryogrid/QueryRunner/types"
)

// ProjectionExecutor keeps the requested columns of each child tuple in the
// requested order.
type ProjectionExecutor struct {
	context       *ExecutorContext
	plan_         *plans.ProjectionPlanNode
	child_        Executor
	colIdxs       []uint32
	output_schema *schema.Schema
}

func NewProjectionExecutor(context *ExecutorContext, plan *plans.ProjectionPlanNode, child Executor) Executor {
	return &ProjectionExecutor{context, plan, child, nil, nil}
}

func (e *ProjectionExecutor) Init() error {
	if err := e.child_.Init(); err != nil {
		return err
	}

	childSchema := e.child_.GetOutputSchema()
	names := e.plan_.GetColumnNames()
	e.colIdxs = make([]uint32, 0, len(names))
	for _, name := range names {
		colIdx := childSchema.GetColIndex(name)
		if colIdx == math.MaxUint32 {
			return common.NewUnknownColumnError(name)
		}
		e.colIdxs = append(e.colIdxs, colIdx)
	}
	e.output_schema = schema.NewSchemaFromNames(names)
	return nil
}

func (e *ProjectionExecutor) Next() (*tuple.Tuple, Done, error) {
	t, done, err := e.child_.Next()
	if err != nil || done {
		return nil, done, err
	}

	values := make([]types.Value, 0, len(e.colIdxs))
	for _, colIdx := range e.colIdxs {
		values = append(values, t.GetValueAt(colIdx))
	}
	return tuple.NewTupleFromSchema(values, e.output_schema), false, nil
}

func (e *ProjectionExecutor) GetOutputSchema() *schema.Schema {
	return e.output_schema
}
