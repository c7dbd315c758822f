package catalog

import (
	"errors"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/storage/disk"
	"github.com/ryogrid/QueryRunner/storage/table"
	testingpkg "github.com/ryogrid/QueryRunner/testing/testing_assert"
	"github.com/ryogrid/QueryRunner/types"
)

func newTestCatalog() (*Catalog, *disk.VirtualSourceManagerImpl) {
	vsm := disk.NewVirtualSourceManagerImpl()
	vsm.AddSource("a.csv", []byte("id,name\n1,x\n2,y\n1,z\n"))
	return NewCatalog(vsm), vsm
}

func TestLoadInfersSchemaAndCells(t *testing.T) {
	c, _ := newTestCatalog()

	rel, err := c.Load("a.csv")
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, []string{"id", "name"}, rel.Schema().GetColumnNames())
	testingpkg.Equals(t, 3, rel.GetRowCount())

	first := rel.GetTuple(0)
	testingpkg.Equals(t, types.Integer, first.GetValueAt(0).ValueType())
	testingpkg.Equals(t, int64(1), first.GetValueAt(0).ToInteger())
	testingpkg.Equals(t, types.Varchar, first.GetValueAt(1).ValueType())
	testingpkg.Equals(t, "z", rel.GetTuple(2).GetValueAt(1).ToVarchar())
}

func TestLoadIsCached(t *testing.T) {
	c, vsm := newTestCatalog()

	rel1, err := c.Load("a.csv")
	testingpkg.Ok(t, err)
	// replacing the source content must not change the cached relation
	vsm.AddSource("a.csv", []byte("other\n1\n"))
	rel2, err := c.Load("a.csv")
	testingpkg.Ok(t, err)

	testingpkg.Assert(t, rel1 == rel2, "second load should return the cached relation")
	testingpkg.Equals(t, uint64(1), vsm.GetNumReads())

	meta := c.GetTableByName("a.csv")
	testingpkg.Assert(t, meta != nil, "metadata should be cached")
	testingpkg.Equals(t, "a.csv", meta.GetTableName())
	testingpkg.Equals(t, uint32(0), meta.OID())
	testingpkg.Equals(t, 1, len(c.GetAllTables()))
}

func TestLoadMixedCellTypesPerColumn(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	vsm.AddSource("m.csv", []byte("v\n10\n-3\n2.5\nabc\n"))
	c := NewCatalog(vsm)

	rel, err := c.Load("m.csv")
	testingpkg.Ok(t, err)
	kinds := []types.TypeID{types.Integer, types.Varchar, types.Varchar, types.Varchar}
	for i, kind := range kinds {
		testingpkg.Equals(t, kind, rel.GetTuple(i).GetValueAt(0).ValueType())
	}
}

func TestLoadTrimsTrailingWhitespaceAndBlankLines(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	vsm.AddSource("w.csv", []byte("id,name \r\n1,x\r\n\r\n2,y  \n\n"))
	c := NewCatalog(vsm)

	rel, err := c.Load("w.csv")
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, "id,name\n1,x\n2,y\n", rel.ToString())
}

func TestLoadEmptySource(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	vsm.AddSource("zero.csv", []byte(""))
	vsm.AddSource("header_only.csv", []byte("id,name\n"))
	c := NewCatalog(vsm)

	for _, name := range []string{"zero.csv", "header_only.csv"} {
		_, err := c.Load(name)
		testingpkg.Assert(t, errors.Is(err, common.ErrEmptySource), "%s: expected empty source, got %v", name, err)
		testingpkg.Assert(t, errors.Is(err, common.ErrSource), "%s: empty source is a source error", name)
		testingpkg.Equals(t, "Empty file", err.Error())
		testingpkg.Assert(t, c.GetTableByName(name) == nil, "failed load must not be cached")
	}
}

func TestLoadMissingSourceIsIOError(t *testing.T) {
	c, _ := newTestCatalog()

	_, err := c.Load("missing.csv")
	testingpkg.Assert(t, errors.Is(err, common.ErrIO), "expected io error, got %v", err)
	testingpkg.Assert(t, errors.Unwrap(err) != nil, "io error should carry its cause")
	testingpkg.Assert(t, errors.Is(err, fs.ErrNotExist), "cause should be not-exist, got %v", err)

	// other entries are unaffected
	_, err = c.Load("a.csv")
	testingpkg.Ok(t, err)
}

func TestLoadMalformedSources(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	vsm.AddSource("fields.csv", []byte("a,b\n1,2\n3\n"))
	vsm.AddSource("dup.csv", []byte("a,a\n1,2\n"))
	vsm.AddSource("noheader.csv", []byte("\n1,2\n"))
	c := NewCatalog(vsm)

	for _, name := range []string{"fields.csv", "dup.csv", "noheader.csv"} {
		_, err := c.Load(name)
		testingpkg.Assert(t, errors.Is(err, common.ErrSource), "%s: expected source error, got %v", name, err)
	}
	_, err := c.Load("fields.csv")
	testingpkg.Equals(t, "fields.csv: line 3 has 1 fields, expected 2", err.Error())
}

func TestLoadFailureIsRetried(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	c := NewCatalog(vsm)

	_, err := c.Load("late.csv")
	testingpkg.Nok(t, err, "source does not exist yet")

	vsm.AddSource("late.csv", []byte("a\n1\n"))
	rel, err := c.Load("late.csv")
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, 1, rel.GetRowCount())
}

// gatedSourceManager blocks every open until release is closed
type gatedSourceManager struct {
	disk.SourceManager
	entered chan struct{}
	release chan struct{}
	opens   int32
}

func (g *gatedSourceManager) OpenSource(name string) (io.ReadCloser, error) {
	if atomic.AddInt32(&g.opens, 1) == 1 {
		close(g.entered)
	}
	<-g.release
	return g.SourceManager.OpenSource(name)
}

func TestConcurrentFirstLoadReadsOnce(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	vsm.AddSource("a.csv", []byte("id,name\n1,x\n2,y\n"))
	gsm := &gatedSourceManager{vsm, make(chan struct{}), make(chan struct{}), 0}
	c := NewCatalog(gsm)

	const callers = 16
	results := make([]*table.Relation, callers)
	errs := make([]error, callers)
	wg := new(sync.WaitGroup)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = c.Load("a.csv")
	}()
	<-gsm.entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = c.Load("a.csv")
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(gsm.release)
	wg.Wait()

	testingpkg.Equals(t, int32(1), atomic.LoadInt32(&gsm.opens))
	for i := 0; i < callers; i++ {
		testingpkg.Ok(t, errs[i])
		testingpkg.Assert(t, results[i] == results[0], "caller %d got a different relation", i)
	}
}

func TestConcurrentLoadsOfDifferentSources(t *testing.T) {
	vsm := disk.NewVirtualSourceManagerImpl()
	names := []string{"a.csv", "b.csv", "c.csv", "d.csv"}
	for _, name := range names {
		vsm.AddSource(name, []byte("k\n1\n2\n"))
	}
	c := NewCatalog(vsm)

	wg := new(sync.WaitGroup)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, err := c.Load(names[idx%len(names)])
			testingpkg.Ok(t, err)
		}(i)
	}
	wg.Wait()

	testingpkg.Equals(t, uint64(len(names)), vsm.GetNumReads())
	testingpkg.Equals(t, len(names), len(c.GetAllTables()))
}
