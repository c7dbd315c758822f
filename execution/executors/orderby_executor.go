package executors

import (
	"math"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"golang.org/x/exp/slices"
)

/**
 * OrderbyExecutor sorts the tuples of its child by one column. The sort is
 * stable in both directions.
 */
type OrderbyExecutor struct {
	context *ExecutorContext
	plan_   *plans.OrderbyPlanNode
	child_  Executor
	/** sorted child tuples */
	sort_tuples_ []*tuple.Tuple
	cur_idx_     int // target tuple index on Next method
}

func NewOrderbyExecutor(exec_ctx *ExecutorContext, plan *plans.OrderbyPlanNode,
	child Executor) *OrderbyExecutor {
	return &OrderbyExecutor{exec_ctx, plan, child, nil, 0}
}

func (e *OrderbyExecutor) GetOutputSchema() *schema.Schema { return e.child_.GetOutputSchema() }

func (e *OrderbyExecutor) Init() error {
	if err := e.child_.Init(); err != nil {
		return err
	}
	colIdx := e.GetOutputSchema().GetColIndex(e.plan_.GetColumnName())
	if colIdx == math.MaxUint32 {
		return common.NewUnknownColumnError(e.plan_.GetColumnName())
	}

	tuples, err := drainExecutor(e.child_)
	if err != nil {
		return err
	}
	e.sort_tuples_ = SortTuples(tuples, colIdx, e.plan_.GetOrderbyType())
	e.cur_idx_ = 0
	return nil
}

func (e *OrderbyExecutor) Next() (*tuple.Tuple, Done, error) {
	if e.cur_idx_ < len(e.sort_tuples_) {
		ret := e.sort_tuples_[e.cur_idx_]
		e.cur_idx_++
		return ret, false, nil
	} else {
		return nil, true, nil
	}
}

// SortTuples returns a stably sorted copy of tuples ordered by the value at
// colIdx. The input slice is left untouched.
func SortTuples(tuples []*tuple.Tuple, colIdx uint32, orderbyType plans.OrderbyType) []*tuple.Tuple {
	ret := make([]*tuple.Tuple, len(tuples))
	copy(ret, tuples)

	slices.SortStableFunc(ret, func(a, b *tuple.Tuple) int {
		c := a.GetValueAt(colIdx).CompareTo(b.GetValueAt(colIdx))
		if orderbyType == plans.DESC {
			return -c
		}
		return c
	})
	return ret
}
