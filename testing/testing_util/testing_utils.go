package testing_util

import (
	"sort"
	"strings"

	"github.com/ryogrid/QueryRunner/storage/disk"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"github.com/ryogrid/QueryRunner/types"
)

func GetValue(data interface{}) (value types.Value) {
	switch v := data.(type) {
	case int:
		value = types.NewInteger(int64(v))
	case int64:
		value = types.NewInteger(v)
	case string:
		value = types.NewVarchar(v)
	case *types.Value:
		return *v
	case types.Value:
		return v
	default:
		panic("not implemented")
	}
	return
}

// MakeRelation builds a relation from Go values. ints become Integer cells
// and strings Varchar cells, no inference is applied.
func MakeRelation(columnNames []string, rows [][]interface{}) *table.Relation {
	schema_ := schema.NewSchemaFromNames(columnNames)
	tuples := make([]*tuple.Tuple, 0, len(rows))
	for _, row := range rows {
		values := make([]types.Value, 0, len(row))
		for _, data := range row {
			values = append(values, GetValue(data))
		}
		tuples = append(tuples, tuple.NewTupleFromSchema(values, schema_))
	}
	return table.NewRelation(schema_, tuples)
}

// RowStrings returns the rendered rows of rel in order, without the header.
func RowStrings(rel *table.Relation) []string {
	ret := make([]string, 0, rel.GetRowCount())
	for _, t := range rel.Tuples() {
		ret = append(ret, t.ToString())
	}
	return ret
}

// SortedRowStrings is RowStrings in byte order, for comparing results whose
// row order is not defined.
func SortedRowStrings(rel *table.Relation) []string {
	ret := RowStrings(rel)
	sort.Strings(ret)
	return ret
}

// NewVirtualSources returns a source manager holding the given sources.
// Leading newlines and tabs are trimmed from each content so test sources can
// be written as raw string literals.
func NewVirtualSources(sources map[string]string) *disk.VirtualSourceManagerImpl {
	vsm := disk.NewVirtualSourceManagerImpl()
	for name, content := range sources {
		vsm.AddSource(name, []byte(strings.TrimLeft(content, "\n\t")))
	}
	return vsm
}
