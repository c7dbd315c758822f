package executors

import (
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

/**
 * JoinExecutor joins the tuples of its child (left) with the relation of
 * another source (right). The strategy comes from the executor context.
 */
type JoinExecutor struct {
	context  *ExecutorContext
	plan_    *plans.JoinPlanNode
	child_   Executor
	result   *table.Relation
	cur_idx_ int
}

func NewJoinExecutor(exec_ctx *ExecutorContext, plan *plans.JoinPlanNode, child Executor) *JoinExecutor {
	return &JoinExecutor{exec_ctx, plan, child, nil, 0}
}

func (e *JoinExecutor) Init() error {
	if err := e.child_.Init(); err != nil {
		return err
	}
	leftTuples, err := drainExecutor(e.child_)
	if err != nil {
		return err
	}
	left := table.NewRelation(e.child_.GetOutputSchema(), leftTuples)

	right, err := e.context.GetCatalog().Load(e.plan_.GetSourceName())
	if err != nil {
		return err
	}

	strategy := e.context.GetJoinStrategy()
	common.ShPrintf(common.DEBUG_INFO, "JoinExecutor: %s join with %s on %s (%d x %d rows)\n",
		strategy, e.plan_.GetSourceName(), e.plan_.GetColumnName(), left.GetRowCount(), right.GetRowCount())
	result, err := JoinRelations(left, right, e.plan_.GetColumnName(), strategy)
	if err != nil {
		return err
	}
	e.result = result
	e.cur_idx_ = 0
	return nil
}

func (e *JoinExecutor) Next() (*tuple.Tuple, Done, error) {
	if e.cur_idx_ >= e.result.GetRowCount() {
		return nil, true, nil
	}
	ret := e.result.GetTuple(e.cur_idx_)
	e.cur_idx_++
	return ret, false, nil
}

func (e *JoinExecutor) GetOutputSchema() *schema.Schema {
	return e.result.Schema()
}
