package plans

/**
 * JoinPlanNode joins the relation built so far (left) with another source
 * (right) on equal values of one column present in both.
 */
type JoinPlanNode struct {
	sourceName string
	columnName string
}

func NewJoinPlanNode(sourceName string, columnName string) *JoinPlanNode {
	return &JoinPlanNode{sourceName, columnName}
}

func (p *JoinPlanNode) GetType() PlanType { return Join }

/** @return the source loaded as the right side of the join */
func (p *JoinPlanNode) GetSourceName() string { return p.sourceName }

/** @return the join column name */
func (p *JoinPlanNode) GetColumnName() string { return p.columnName }

func (p *JoinPlanNode) GetDebugStr() string {
	return "JOIN " + p.sourceName + " " + p.columnName
}
