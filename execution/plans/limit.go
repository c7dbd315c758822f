package plans

import "strconv"

// LimitPlanNode keeps the first limit rows, or the last -limit rows when
// limit is negative.
type LimitPlanNode struct {
	limit int64
}

func NewLimitPlanNode(limit int64) *LimitPlanNode {
	return &LimitPlanNode{limit}
}

func (p *LimitPlanNode) GetLimit() int64 {
	return p.limit
}

func (p *LimitPlanNode) GetType() PlanType {
	return Limit
}

func (p *LimitPlanNode) GetDebugStr() string {
	return "TAKE " + strconv.FormatInt(p.limit, 10)
}
