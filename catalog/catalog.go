package catalog

import (
	"github.com/ryogrid/QueryRunner/catalog/catalog_interface"
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/storage/disk"
	"github.com/ryogrid/QueryRunner/storage/table"
	"golang.org/x/sync/singleflight"
)

// Catalog caches the relations loaded from sources for the lifetime of the
// process. There is no eviction.
//
// A source is read at most once: concurrent first references to the same
// name share one load through loadGroup, and the cache is checked again
// inside the flight so a load which finished just before the flight started
// is not repeated. Failed loads are not cached.
type Catalog struct {
	sourceManager disk.SourceManager
	tableNames    map[string]*TableMetadata
	nextTableId   uint32
	latch         common.ReaderWriterLatch
	loadGroup     singleflight.Group
}

var _ catalog_interface.CatalogInterface = (*Catalog)(nil)

func NewCatalog(sourceManager disk.SourceManager) *Catalog {
	return &Catalog{
		sourceManager: sourceManager,
		tableNames:    make(map[string]*TableMetadata),
		latch:         common.NewRWLatch(),
	}
}

// GetTableByName returns the cached metadata of sourceName, or nil when the
// source has not been loaded.
func (c *Catalog) GetTableByName(sourceName string) *TableMetadata {
	c.latch.RLock()
	defer c.latch.RUnlock()
	return c.tableNames[sourceName]
}

func (c *Catalog) GetAllTables() []*TableMetadata {
	c.latch.RLock()
	defer c.latch.RUnlock()

	ret := make([]*TableMetadata, c.nextTableId)
	for _, t := range c.tableNames {
		ret[t.oid] = t
	}
	return ret
}

// Load returns the relation of sourceName, reading and inferring it on the
// first reference only.
func (c *Catalog) Load(sourceName string) (*table.Relation, error) {
	if t := c.GetTableByName(sourceName); t != nil {
		return t.Relation(), nil
	}

	ret, err, shared := c.loadGroup.Do(sourceName, func() (interface{}, error) {
		if t := c.GetTableByName(sourceName); t != nil {
			return t.Relation(), nil
		}

		rel, err := loadRelation(c.sourceManager, sourceName)
		if err != nil {
			return nil, err
		}
		c.insertTable(sourceName, rel)
		return rel, nil
	})
	if err != nil {
		common.ShPrintf(common.WARN, "Load: %s failed: %v\n", sourceName, err)
		return nil, err
	}
	if shared {
		common.ShPrintf(common.DEBUG_INFO, "Load: %s shared with a concurrent caller\n", sourceName)
	}
	return ret.(*table.Relation), nil
}

func (c *Catalog) insertTable(sourceName string, rel *table.Relation) {
	c.latch.WLock()
	defer c.latch.WUnlock()

	common.SH_Assert(c.tableNames[sourceName] == nil, "source is loaded twice")
	c.tableNames[sourceName] = &TableMetadata{sourceName, rel, c.nextTableId}
	c.nextTableId++
	common.ShPrintf(common.INFO, "Load: %s cached (%d rows, columns %s)\n", sourceName, rel.GetRowCount(), rel.Schema().ToString())
}
