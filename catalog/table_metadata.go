package catalog

import (
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
)

type TableMetadata struct {
	name     string
	relation *table.Relation
	oid      uint32
}

func (t *TableMetadata) Schema() *schema.Schema {
	return t.relation.Schema()
}

func (t *TableMetadata) OID() uint32 {
	return t.oid
}

func (t *TableMetadata) Relation() *table.Relation {
	return t.relation
}

func (t *TableMetadata) GetTableName() string {
	return t.name
}
