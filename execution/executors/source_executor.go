package executors

import (
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

// SourceExecutor emits the rows of a relation in order. When built from a
// plan the relation is resolved through the catalog on Init.
type SourceExecutor struct {
	context  *ExecutorContext
	plan_    *plans.SourcePlanNode
	relation *table.Relation
	cur_idx_ int
}

func NewSourceExecutor(context *ExecutorContext, plan *plans.SourcePlanNode) *SourceExecutor {
	return &SourceExecutor{context, plan, nil, 0}
}

// NewRelationScanExecutor returns a SourceExecutor over an already built
// relation.
func NewRelationScanExecutor(relation *table.Relation) *SourceExecutor {
	return &SourceExecutor{nil, nil, relation, 0}
}

func (e *SourceExecutor) Init() error {
	e.cur_idx_ = 0
	if e.plan_ == nil {
		return nil
	}
	rel, err := e.context.GetCatalog().Load(e.plan_.GetSourceName())
	if err != nil {
		return err
	}
	e.relation = rel
	return nil
}

func (e *SourceExecutor) Next() (*tuple.Tuple, Done, error) {
	if e.cur_idx_ >= e.relation.GetRowCount() {
		return nil, true, nil
	}
	ret := e.relation.GetTuple(e.cur_idx_)
	e.cur_idx_++
	return ret, false, nil
}

func (e *SourceExecutor) GetOutputSchema() *schema.Schema {
	return e.relation.Schema()
}
