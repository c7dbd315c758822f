package plans

// SourcePlanNode names the source a pipeline starts from (FROM).
type SourcePlanNode struct {
	sourceName string
}

func NewSourcePlanNode(sourceName string) *SourcePlanNode {
	return &SourcePlanNode{sourceName}
}

func (p *SourcePlanNode) GetType() PlanType { return Source }

func (p *SourcePlanNode) GetSourceName() string { return p.sourceName }

func (p *SourcePlanNode) GetDebugStr() string {
	return "FROM " + p.sourceName
}
