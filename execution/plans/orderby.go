package plans

type OrderbyType int32

/** The type of the sort order. */
const (
	ASC OrderbyType = iota
	DESC
)

/**
 * OrderbyPlanNode represents the ORDERBY clause. The clause always sorts
 * descending, ascending order is used by the sort-merge join only.
 */
type OrderbyPlanNode struct {
	columnName   string
	orderbyType_ OrderbyType
}

func NewOrderbyPlanNode(columnName string, orderbyType OrderbyType) *OrderbyPlanNode {
	return &OrderbyPlanNode{columnName, orderbyType}
}

func (p *OrderbyPlanNode) GetType() PlanType { return Orderby }

func (p *OrderbyPlanNode) GetColumnName() string { return p.columnName }

/** @return the Order type ASC or DESC */
func (p *OrderbyPlanNode) GetOrderbyType() OrderbyType { return p.orderbyType_ }

func (p *OrderbyPlanNode) GetDebugStr() string {
	if p.orderbyType_ == ASC {
		return "ORDERBY " + p.columnName + " ASC"
	}
	return "ORDERBY " + p.columnName
}
