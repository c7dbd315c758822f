package plans

// CountbyPlanNode groups rows by one column and counts each group (COUNTBY).
type CountbyPlanNode struct {
	columnName string
}

func NewCountbyPlanNode(columnName string) *CountbyPlanNode {
	return &CountbyPlanNode{columnName}
}

func (p *CountbyPlanNode) GetType() PlanType { return Countby }

func (p *CountbyPlanNode) GetColumnName() string { return p.columnName }

func (p *CountbyPlanNode) GetDebugStr() string {
	return "COUNTBY " + p.columnName
}
