package column

// Column is one named attribute of a schema. Columns carry no declared type,
// each cell is typed on its own when it is loaded.
type Column struct {
	columnName string
}

func NewColumn(name string) *Column {
	return &Column{name}
}

func (c *Column) GetColumnName() string {
	return c.columnName
}
