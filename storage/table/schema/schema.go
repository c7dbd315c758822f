package schema

import (
	"math"
	"strings"

	"github.com/ryogrid/QueryRunner/storage/table/column"
)

type Schema struct {
	columns []*column.Column
}

// NewSchemaFromNames builds a schema holding the given names in order.
func NewSchemaFromNames(names []string) *Schema {
	columns := make([]*column.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, column.NewColumn(name))
	}
	return &Schema{columns}
}

func (s *Schema) GetColumnCount() uint32 {
	return uint32(len(s.columns))
}

// GetColIndex returns the position of the first column named columnName,
// or math.MaxUint32 when there is none.
func (s *Schema) GetColIndex(columnName string) uint32 {
	for i := uint32(0); i < s.GetColumnCount(); i++ {
		if s.columns[i].GetColumnName() == columnName {
			return i
		}
	}

	return math.MaxUint32
}

func (s *Schema) IsHaveColumn(columnName string) bool {
	return s.GetColIndex(columnName) != math.MaxUint32
}

func (s *Schema) GetColumnNames() []string {
	names := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		names = append(names, col.GetColumnName())
	}
	return names
}

// ToString joins the column names with commas, the header line of a result.
func (s *Schema) ToString() string {
	return strings.Join(s.GetColumnNames(), ",")
}
