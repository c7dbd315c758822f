package queryrunner

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/executors"
	"github.com/ryogrid/QueryRunner/storage/disk"
	testingpkg "github.com/ryogrid/QueryRunner/testing/testing_assert"
	"github.com/ryogrid/QueryRunner/testing/testing_util"
)

func newSources() *disk.VirtualSourceManagerImpl {
	return testing_util.NewVirtualSources(map[string]string{
		"a.csv":     "id,name\n1,x\n2,y\n1,z\n",
		"b.csv":     "id,score\n1,10\n1,20\n2,30\n",
		"c.csv":     "id,name\n1,q\n",
		"empty.csv": "",
		"nums.csv":  "v,w\n-5,a\n10,b\n9,c\n1.5,d\n",
		"zeros.csv": "k\n007\n7\n07a\n",
	})
}

func newTestRunner(t *testing.T, strategy executors.JoinStrategy) *QueryRunner {
	qr := NewQueryRunner(newSources(), strategy)
	t.Cleanup(qr.Shutdown)
	return qr
}

var strategies = []executors.JoinStrategy{executors.HashJoinStrategy, executors.SortMergeJoinStrategy}

func TestCountbyExample(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	testingpkg.Equals(t, "id,count\n1,2\n2,1\n", qr.Execute("FROM a.csv COUNTBY id"))
}

func TestJoinExample(t *testing.T) {
	for _, strategy := range strategies {
		qr := newTestRunner(t, strategy)
		result, err := qr.ExecuteQuery("FROM a.csv JOIN b.csv id")
		testingpkg.Ok(t, err)
		testingpkg.Equals(t, "id,name,score", result.Schema().ToString())
		testingpkg.Equals(t, []string{"1,x,10", "1,x,20", "1,z,10", "1,z,20", "2,y,30"}, testing_util.SortedRowStrings(result))
	}
}

func TestSelectTakeExample(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	testingpkg.Equals(t, "name\nz\n", qr.Execute("FROM a.csv SELECT name TAKE -1"))
}

func TestMissingFromExample(t *testing.T) {
	sources := newSources()
	qr := NewQueryRunner(sources, executors.HashJoinStrategy)
	defer qr.Shutdown()

	_, err := qr.ExecuteQuery("a.csv SELECT name")
	testingpkg.Assert(t, errors.Is(err, common.ErrParse), "expected parse error, got %v", err)
	testingpkg.Equals(t, "Missing data source", qr.Execute("SELECT name"))
	// nothing was loaded
	testingpkg.Equals(t, uint64(0), sources.GetNumReads())
}

func TestOutputFormat(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)

	testingpkg.Equals(t, "id,name\n1,x\n2,y\n1,z\n", qr.Execute("FROM a.csv"))
	testingpkg.Equals(t, common.NoDataMessage, qr.Execute("FROM a.csv TAKE 0"))
	testingpkg.Equals(t, "No data returned.", qr.Execute("FROM a.csv JOIN b.csv id SELECT score TAKE 0"))
	testingpkg.Equals(t, "name,name\nx,x\n", qr.Execute("FROM a.csv SELECT name,name TAKE 1"))
}

func TestOrderbyIsDescending(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	testingpkg.Equals(t, "id,score\n2,30\n1,20\n1,10\n", qr.Execute("FROM b.csv ORDERBY score"))
	// stable: 1,x stays before 1,z
	testingpkg.Equals(t, "id,name\n2,y\n1,x\n1,z\n", qr.Execute("FROM a.csv ORDERBY id"))
}

func TestNumericInference(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	// 10 and 9 are integers, -5 and 1.5 are text and sort after them
	testingpkg.Equals(t, "v\n1.5\n-5\n10\n9\n", qr.Execute("FROM nums.csv ORDERBY v SELECT v"))
}

func TestErrorsAreReturnedVerbatim(t *testing.T) {
	qr := newTestRunner(t, executors.SortMergeJoinStrategy)

	testingpkg.Equals(t, "column nope does not exist", qr.Execute("FROM a.csv SELECT id,nope"))
	testingpkg.Equals(t, "column nope does not exist", qr.Execute("FROM a.csv COUNTBY nope"))
	testingpkg.Equals(t, "Empty file", qr.Execute("FROM empty.csv"))
	testingpkg.Equals(t, "Empty file", qr.Execute("FROM a.csv JOIN empty.csv id"))
	testingpkg.Equals(t, "duplicate column name in output schema", qr.Execute("FROM a.csv JOIN c.csv id"))
	testingpkg.Equals(t, "TAKE requires integer input", qr.Execute("FROM a.csv TAKE x"))
	testingpkg.Equals(t, "No query entered", qr.Execute(""))

	_, err := qr.ExecuteQuery("FROM missing.csv")
	testingpkg.Assert(t, errors.Is(err, common.ErrIO), "expected io error, got %v", err)

	// earlier failures leave the catalog usable
	testingpkg.Equals(t, "id,count\n1,2\n2,1\n", qr.Execute("FROM a.csv COUNTBY id"))
}

func TestSourcesAreLoadedOnce(t *testing.T) {
	sources := newSources()
	qr := NewQueryRunner(sources, executors.HashJoinStrategy)
	defer qr.Shutdown()

	qr.Execute("FROM a.csv")
	qr.Execute("FROM a.csv JOIN b.csv id")
	qr.Execute("FROM b.csv JOIN a.csv id SELECT name")
	testingpkg.Equals(t, uint64(2), sources.GetNumReads())
	testingpkg.Equals(t, 2, len(qr.GetCatalog().GetAllTables()))
}

func TestConcurrentQueries(t *testing.T) {
	sources := newSources()
	qr := NewQueryRunner(sources, executors.SortMergeJoinStrategy)
	defer qr.Shutdown()

	queries := map[string]string{
		"FROM a.csv COUNTBY id":               "id,count\n1,2\n2,1\n",
		"FROM a.csv SELECT name TAKE -1":      "name\nz\n",
		"FROM b.csv ORDERBY score TAKE 1":     "id,score\n2,30\n",
		"FROM a.csv JOIN b.csv id COUNTBY id": "id,count\n1,4\n2,1\n",
	}

	wg := new(sync.WaitGroup)
	errCh := make(chan error, 200)
	for i := 0; i < 50; i++ {
		for query, expected := range queries {
			wg.Add(1)
			go func(query string, expected string) {
				defer wg.Done()
				if got := qr.Execute(query); got != expected {
					errCh <- fmt.Errorf("%s: got %q", query, got)
				}
			}(query, expected)
		}
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Error(err)
	}
	testingpkg.Equals(t, uint64(2), sources.GetNumReads())
}

func TestShutdownRejectsQueries(t *testing.T) {
	qr := NewQueryRunner(newSources(), executors.HashJoinStrategy)
	testingpkg.Equals(t, "name\nz\n", qr.Execute("FROM a.csv SELECT name TAKE -1"))
	qr.Shutdown()
	qr.Shutdown()

	_, err := qr.ExecuteQuery("FROM a.csv")
	testingpkg.Assert(t, errors.Is(err, common.ErrServerStopped), "expected stopped error, got %v", err)

	// direct execution still works
	result, err := qr.ExecuteQueryRetRelation("FROM a.csv TAKE 1")
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, 1, result.GetRowCount())
}

func TestConvRelationToValues(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	result, err := qr.ExecuteQuery("FROM a.csv TAKE 2")
	testingpkg.Ok(t, err)

	ifs := ConvValueListToIFs(ConvRelationToValues(result))
	testingpkg.Equals(t, [][]interface{}{{int64(1), "x"}, {int64(2), "y"}}, ifs)
}

func TestPrintExecuteResults(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	result, err := qr.ExecuteQuery("FROM a.csv SELECT name,id TAKE -2")
	testingpkg.Ok(t, err)

	var buf bytes.Buffer
	PrintExecuteResults(&buf, ConvRelationToValues(result))
	testingpkg.Equals(t, "----\ny 2 \nz 1 \n", buf.String())
}

func TestLeadingZerosAreDropped(t *testing.T) {
	qr := newTestRunner(t, executors.HashJoinStrategy)
	testingpkg.Equals(t, "k,count\n7,2\n07a,1\n", qr.Execute("FROM zeros.csv COUNTBY k"))
}
