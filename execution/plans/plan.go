package plans

type PlanType int

const (
	Source PlanType = iota
	Projection
	Limit
	Orderby
	Countby
	Join
)

func (t PlanType) String() string {
	switch t {
	case Source:
		return "FROM"
	case Projection:
		return "SELECT"
	case Limit:
		return "TAKE"
	case Orderby:
		return "ORDERBY"
	case Countby:
		return "COUNTBY"
	case Join:
		return "JOIN"
	}
	return "UNKNOWN"
}

// Plan is one step of a query pipeline. A pipeline is an ordered []Plan whose
// first element is always a *SourcePlanNode, every later step consumes the
// relation produced by the step before it.
type Plan interface {
	GetType() PlanType
	GetDebugStr() string
}
