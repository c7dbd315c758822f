package queryrunner

import (
	"fmt"
	"io"

	"github.com/ryogrid/QueryRunner/catalog"
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/executors"
	"github.com/ryogrid/QueryRunner/parser"
	"github.com/ryogrid/QueryRunner/storage/disk"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/types"
)

type QueryRunner struct {
	catalog_         *catalog.Catalog
	exec_engine_     *executors.ExecutionEngine
	join_strategy_   executors.JoinStrategy
	request_manager_ *RequestManager
}

type reqResult struct {
	err      error
	result   *table.Relation
	reqId    *uint64
	query    *string
	callerCh *chan *reqResult
}

// NewQueryRunner returns a runner reading its sources through sm. Queries
// passed to ExecuteQuery run on the runner's request manager, at most
// common.MaxQueryThreadNum at a time.
func NewQueryRunner(sm disk.SourceManager, joinStrategy executors.JoinStrategy) *QueryRunner {
	qr := &QueryRunner{catalog.NewCatalog(sm), &executors.ExecutionEngine{}, joinStrategy, nil}
	qr.request_manager_ = NewRequestManager(qr)
	qr.request_manager_.StartTh()
	return qr
}

// NewQueryRunnerWithDataDir reads sources from files, relative names are
// resolved against dataDir.
func NewQueryRunnerWithDataDir(dataDir string, joinStrategy executors.JoinStrategy) *QueryRunner {
	return NewQueryRunner(disk.NewSourceManagerImpl(dataDir), joinStrategy)
}

func (qr *QueryRunner) GetCatalog() *catalog.Catalog {
	return qr.catalog_
}

func (qr *QueryRunner) GetJoinStrategy() executors.JoinStrategy {
	return qr.join_strategy_
}

// Execute runs one query and renders its result: the header line and one
// line per row, each ending with a newline. A failed query returns the
// error message and a query without rows returns common.NoDataMessage.
func (qr *QueryRunner) Execute(queryStr string) string {
	result, err := qr.ExecuteQuery(queryStr)
	return RenderResult(result, err)
}

func RenderResult(result *table.Relation, err error) string {
	if err != nil {
		return err.Error()
	}
	if result.IsEmpty() {
		return common.NoDataMessage
	}
	return result.ToString()
}

// ExecuteQuery runs queryStr through the request manager and waits for it.
func (qr *QueryRunner) ExecuteQuery(queryStr string) (*table.Relation, error) {
	ch := qr.request_manager_.AppendRequest(&queryStr)
	ret := <-*ch
	return ret.result, ret.err
}

func (qr *QueryRunner) ExecuteQueryForReqTh(ch *chan *reqResult, req *queryRequest) {
	result, err := qr.ExecuteQueryRetRelation(*req.queryStr)
	*ch <- &reqResult{err, result, req.reqId, req.queryStr, req.callerCh}
}

// ExecuteQueryRetRelation parses and runs queryStr on the calling goroutine.
func (qr *QueryRunner) ExecuteQueryRetRelation(queryStr string) (*table.Relation, error) {
	qi, err := parser.ProcessQueryStr(&queryStr)
	if err != nil {
		common.ShPrintf(common.DEBUG_INFO, "ExecuteQuery: parse failed: %s\n", err)
		return nil, err
	}

	context := executors.NewExecutorContext(qr.catalog_, qr.join_strategy_)
	result, err := qr.exec_engine_.Execute(qi.Steps_, context)
	if err != nil {
		return nil, err
	}
	common.ShPrintf(common.DEBUG_INFO, "ExecuteQuery: %q returned %d rows\n", queryStr, result.GetRowCount())
	return result, nil
}

func (qr *QueryRunner) Shutdown() {
	qr.request_manager_.StopTh()
}

func ConvRelationToValues(result *table.Relation) [][]*types.Value {
	retVals := make([][]*types.Value, 0)
	schema_ := result.Schema()
	for _, tuple_ := range result.Tuples() {
		rowVals := make([]*types.Value, 0)
		colNum := int(schema_.GetColumnCount())
		for idx := 0; idx < colNum; idx++ {
			val := tuple_.GetValue(schema_, uint32(idx))
			rowVals = append(rowVals, &val)
		}
		retVals = append(retVals, rowVals)
	}
	return retVals
}

// ConvValueListToIFs converts cells to int64 and string, for encoders.
func ConvValueListToIFs(vals [][]*types.Value) [][]interface{} {
	retVals := make([][]interface{}, 0)
	for _, valList := range vals {
		row := make([]interface{}, 0, len(valList))
		for _, val := range valList {
			switch val.ValueType() {
			case types.Integer:
				row = append(row, val.ToInteger())
			default:
				row = append(row, val.ToVarchar())
			}
		}
		retVals = append(retVals, row)
	}
	return retVals
}

// PrintExecuteResults writes the cells of each row separated by spaces,
// below a "----" line.
func PrintExecuteResults(w io.Writer, results [][]*types.Value) {
	fmt.Fprintln(w, "----")
	for _, valList := range results {
		for _, val := range valList {
			fmt.Fprintf(w, "%s ", val.ToString())
		}
		fmt.Fprintln(w, "")
	}
}
