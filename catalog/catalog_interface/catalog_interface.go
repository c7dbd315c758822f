package catalog_interface

import "github.com/ryogrid/QueryRunner/storage/table"

// CatalogInterface resolves a source name to its relation. Implementations
// must be safe for concurrent use.
type CatalogInterface interface {
	Load(sourceName string) (*table.Relation, error)
}
