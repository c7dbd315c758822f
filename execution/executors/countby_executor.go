package executors

import (
	"math"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/container/hash"
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"github.com/ryogrid/QueryRunner/types"
)

type countbyGroup struct {
	key   types.Value
	count int64
}

// CountbyExecutor emits one (key, count) tuple per distinct value of the
// grouping column, in the order each value first appears in the child.
type CountbyExecutor struct {
	context       *ExecutorContext
	plan_         *plans.CountbyPlanNode
	child_        Executor
	output_schema *schema.Schema
	groups        []*countbyGroup
	cur_idx_      int
}

func NewCountbyExecutor(exec_ctx *ExecutorContext, plan *plans.CountbyPlanNode, child Executor) *CountbyExecutor {
	return &CountbyExecutor{exec_ctx, plan, child, nil, nil, 0}
}

func (e *CountbyExecutor) GetOutputSchema() *schema.Schema { return e.output_schema }

func (e *CountbyExecutor) Init() error {
	if err := e.child_.Init(); err != nil {
		return err
	}
	columnName := e.plan_.GetColumnName()
	colIdx := e.child_.GetOutputSchema().GetColIndex(columnName)
	if colIdx == math.MaxUint32 {
		return common.NewUnknownColumnError(columnName)
	}
	if columnName == common.CountColumnName {
		return common.NewSchemaConflictError(columnName)
	}
	e.output_schema = schema.NewSchemaFromNames([]string{columnName, common.CountColumnName})

	// hash of key -> positions in e.groups
	buckets := make(map[uint32][]int)
	e.groups = make([]*countbyGroup, 0)
	e.cur_idx_ = 0
	for t, done, err := e.child_.Next(); !done; t, done, err = e.child_.Next() {
		if err != nil {
			return err
		}
		key := t.GetValueAt(colIdx)
		h := hash.HashValue(&key)
		found := false
		for _, pos := range buckets[h] {
			if e.groups[pos].key.CompareEquals(key) {
				e.groups[pos].count++
				found = true
				break
			}
		}
		if !found {
			buckets[h] = append(buckets[h], len(e.groups))
			e.groups = append(e.groups, &countbyGroup{key, 1})
		}
	}
	common.ShPrintf(common.DEBUG_INFO, "CountbyExecutor: %d groups on %s\n", len(e.groups), columnName)
	return nil
}

func (e *CountbyExecutor) Next() (*tuple.Tuple, Done, error) {
	if e.cur_idx_ >= len(e.groups) {
		return nil, true, nil
	}
	g := e.groups[e.cur_idx_]
	e.cur_idx_++
	values := []types.Value{g.key, types.NewInteger(g.count)}
	return tuple.NewTupleFromSchema(values, e.output_schema), false, nil
}
