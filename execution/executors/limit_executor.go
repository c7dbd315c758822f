package executors

import (
	"errors"

	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

// LimitExecutor implements TAKE. A positive limit streams the first rows of
// the child, a negative one buffers the child's last -limit rows during Init.
type LimitExecutor struct {
	context *ExecutorContext
	plan    *plans.LimitPlanNode
	child   Executor
	emitted int64          // counts the number of tuples returned. It is compared to the limit
	tail    []*tuple.Tuple // last rows of the child when the limit is negative
}

func NewLimitExecutor(context *ExecutorContext, plan *plans.LimitPlanNode, child Executor) Executor {
	return &LimitExecutor{context, plan, child, 0, nil}
}

func (e *LimitExecutor) Init() error {
	if err := e.child.Init(); err != nil {
		return err
	}
	e.emitted = 0
	e.tail = nil

	limit := e.plan.GetLimit()
	if limit >= 0 {
		return nil
	}

	keep := -limit
	ring := make([]*tuple.Tuple, 0)
	for t, done, err := e.child.Next(); !done; t, done, err = e.child.Next() {
		if err != nil {
			return err
		}
		if int64(len(ring)) == keep {
			ring = ring[1:]
		}
		ring = append(ring, t)
	}
	e.tail = ring
	return nil
}

func (e *LimitExecutor) Next() (*tuple.Tuple, Done, error) {
	limit := e.plan.GetLimit()
	if limit < 0 {
		if e.emitted >= int64(len(e.tail)) {
			return nil, true, nil
		}
		ret := e.tail[e.emitted]
		e.emitted++
		return ret, false, nil
	}

	if e.emitted >= limit {
		return nil, true, nil
	}
	t, done, err := e.child.Next()
	if err != nil || done {
		return nil, done, err
	}
	if t == nil {
		return nil, true, errors.New("e.child.Next returned nil unexpectedly.")
	}
	e.emitted++
	return t, false, nil
}

func (e *LimitExecutor) GetOutputSchema() *schema.Schema {
	return e.child.GetOutputSchema()
}
