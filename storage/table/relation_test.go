package table

import (
	"testing"

	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	testingpkg "github.com/ryogrid/QueryRunner/testing/testing_assert"
	"github.com/ryogrid/QueryRunner/types"
)

func TestRelationToString(t *testing.T) {
	schema_ := schema.NewSchemaFromNames([]string{"id", "name"})
	rel := NewRelation(schema_, []*tuple.Tuple{
		tuple.NewTupleFromSchema([]types.Value{types.NewInteger(1), types.NewVarchar("x")}, schema_),
		tuple.NewTupleFromSchema([]types.Value{types.NewInteger(2), types.NewVarchar("y")}, schema_),
	})

	testingpkg.Equals(t, 2, rel.GetRowCount())
	testingpkg.AssertFalse(t, rel.IsEmpty(), "relation should not be empty")
	testingpkg.Equals(t, "id,name\n1,x\n2,y\n", rel.ToString())
}

func TestEmptyRelationKeepsSchema(t *testing.T) {
	rel := NewRelation(schema.NewSchemaFromNames([]string{"a"}), nil)

	testingpkg.Assert(t, rel.IsEmpty(), "relation should be empty")
	testingpkg.Equals(t, "a\n", rel.ToString())
}
