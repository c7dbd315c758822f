package plans

import "strings"

type ProjectionPlanNode struct {
	columnNames []string
}

func NewProjectionPlanNode(columnNames []string) *ProjectionPlanNode {
	return &ProjectionPlanNode{columnNames}
}

func (p *ProjectionPlanNode) GetType() PlanType {
	return Projection
}

// GetColumnNames returns the requested columns in output order. A name may
// appear more than once.
func (p *ProjectionPlanNode) GetColumnNames() []string {
	return p.columnNames
}

func (p *ProjectionPlanNode) GetDebugStr() string {
	return "SELECT " + strings.Join(p.columnNames, ",")
}
