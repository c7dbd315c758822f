package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/storage/disk"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"github.com/ryogrid/QueryRunner/types"
)

func newIOError(cause error) error {
	return &common.QueryError{Kind: common.ErrIO, Msg: cause.Error(), Cause: cause}
}

func newEmptySourceError() error {
	return &common.QueryError{Kind: common.ErrEmptySource, Msg: "Empty file"}
}

func newMalformedSourceError(sourceName string, msg string) error {
	return &common.QueryError{Kind: common.ErrSource, Msg: sourceName + ": " + msg}
}

// loadRelation reads a comma separated source. The first line is the header
// and every following non-blank line is one row with exactly one field per
// column. Each cell is typed on its own by types.InferValue.
func loadRelation(sm disk.SourceManager, sourceName string) (*table.Relation, error) {
	rc, err := sm.OpenSource(sourceName)
	if err != nil {
		return nil, newIOError(err)
	}
	defer rc.Close()

	return parseRelation(rc, sourceName)
}

func parseRelation(r io.Reader, sourceName string) (*table.Relation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, common.SourceLineBufferSize), common.MaxSourceLineBufferSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, newIOError(err)
		}
		return nil, newEmptySourceError()
	}

	header := trimLine(scanner.Text())
	if header == "" {
		return nil, newMalformedSourceError(sourceName, "missing header line")
	}
	names := strings.Split(header, ",")
	seen := mapset.NewSet[string]()
	for _, name := range names {
		if !seen.Add(name) {
			return nil, newMalformedSourceError(sourceName, fmt.Sprintf("duplicate column %s in header", name))
		}
	}
	schema_ := schema.NewSchemaFromNames(names)

	tuples := make([]*tuple.Tuple, 0)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := trimLine(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != len(names) {
			return nil, newMalformedSourceError(sourceName,
				fmt.Sprintf("line %d has %d fields, expected %d", lineNo, len(fields), len(names)))
		}
		values := make([]types.Value, 0, len(fields))
		for _, field := range fields {
			values = append(values, types.InferValue(field))
		}
		tuples = append(tuples, tuple.NewTupleFromSchema(values, schema_))
	}
	if err := scanner.Err(); err != nil {
		return nil, newIOError(err)
	}

	if len(tuples) == 0 {
		return nil, newEmptySourceError()
	}
	return table.NewRelation(schema_, tuples), nil
}

func trimLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
