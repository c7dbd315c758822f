package executors

import (
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/tuple"
)

// ExecutionEngine runs a pipeline of plans. Each step wraps the executor of
// the step before it, so the first failing step ends the query and no rows
// of a failed query are returned.
type ExecutionEngine struct {
}

func (e *ExecutionEngine) Execute(steps []plans.Plan, context *ExecutorContext) (*table.Relation, error) {
	executor, err := e.CreateExecutor(steps, context)
	if err != nil {
		return nil, err
	}
	if err = executor.Init(); err != nil {
		common.ShPrintf(common.DEBUG_INFO, "ExecutionEngine: pipeline failed: %v\n", err)
		return nil, err
	}

	tuples, err := drainExecutor(executor)
	if err != nil {
		return nil, err
	}
	return table.NewRelation(executor.GetOutputSchema(), tuples), nil
}

// CreateExecutor chains the executors of steps. The first step must name a
// source.
func (e *ExecutionEngine) CreateExecutor(steps []plans.Plan, context *ExecutorContext) (Executor, error) {
	if len(steps) == 0 {
		return nil, common.NewParseError("Missing data source")
	}
	source, ok := steps[0].(*plans.SourcePlanNode)
	if !ok {
		return nil, common.NewParseError("Missing data source")
	}

	var executor Executor = NewSourceExecutor(context, source)
	for _, step := range steps[1:] {
		common.ShPrintf(common.DEBUG_INFO_DETAIL, "ExecutionEngine: step %s\n", step.GetDebugStr())
		switch p := step.(type) {
		case *plans.ProjectionPlanNode:
			executor = NewProjectionExecutor(context, p, executor)
		case *plans.LimitPlanNode:
			executor = NewLimitExecutor(context, p, executor)
		case *plans.OrderbyPlanNode:
			executor = NewOrderbyExecutor(context, p, executor)
		case *plans.CountbyPlanNode:
			executor = NewCountbyExecutor(context, p, executor)
		case *plans.JoinPlanNode:
			executor = NewJoinExecutor(context, p, executor)
		default:
			// a second FROM or an unknown node
			return nil, common.NewParseError("Invalid step " + step.GetDebugStr())
		}
	}
	return executor, nil
}

// drainExecutor collects every remaining tuple of an initialized executor.
func drainExecutor(executor Executor) ([]*tuple.Tuple, error) {
	tuples := make([]*tuple.Tuple, 0)
	for t, done, err := executor.Next(); !done; t, done, err = executor.Next() {
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)
	}
	return tuples, nil
}
