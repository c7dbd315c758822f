package types

type TypeID int

const (
	Invalid TypeID = iota
	Integer
	Varchar
)

func (t TypeID) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Varchar:
		return "Varchar"
	}
	return "Invalid"
}
