package executors

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	pair "github.com/notEpsilon/go-pair"
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"github.com/ryogrid/QueryRunner/types"
)

// joinMatch pairs a left tuple position (First) with a right tuple position
// (Second).
type joinMatch = pair.Pair[int, int]

// joinLayout describes where the join keys are and which right columns
// follow the left ones in the output.
type joinLayout struct {
	output_schema *schema.Schema
	leftKeyIdx    uint32
	rightKeyIdx   uint32
	rightKeepIdxs []uint32
}

func resolveJoinLayout(left *schema.Schema, right *schema.Schema, columnName string) (*joinLayout, error) {
	leftKeyIdx := left.GetColIndex(columnName)
	if leftKeyIdx == math.MaxUint32 {
		return nil, common.NewUnknownColumnError(columnName)
	}
	rightKeyIdx := right.GetColIndex(columnName)
	if rightKeyIdx == math.MaxUint32 {
		return nil, common.NewUnknownColumnError(columnName)
	}

	outNames := left.GetColumnNames()
	taken := mapset.NewSet[string](outNames...)
	rightKeepIdxs := make([]uint32, 0, right.GetColumnCount())
	for idx, name := range right.GetColumnNames() {
		if uint32(idx) == rightKeyIdx {
			continue
		}
		// the join column is always in taken, it comes from the left side
		if !taken.Add(name) {
			return nil, common.NewSchemaConflictError(name)
		}
		rightKeepIdxs = append(rightKeepIdxs, uint32(idx))
		outNames = append(outNames, name)
	}

	return &joinLayout{schema.NewSchemaFromNames(outNames), leftKeyIdx, rightKeyIdx, rightKeepIdxs}, nil
}

func (l *joinLayout) materialize(left []*tuple.Tuple, right []*tuple.Tuple, matches []joinMatch) []*tuple.Tuple {
	ret := make([]*tuple.Tuple, 0, len(matches))
	for _, m := range matches {
		values := left[m.First].Values()
		rt := right[m.Second]
		for _, colIdx := range l.rightKeepIdxs {
			values = append(values, rt.GetValueAt(colIdx))
		}
		ret = append(ret, tuple.NewTupleFromSchema(values, l.output_schema))
	}
	return ret
}

// JoinRelations is the inner equi-join of left and right on columnName. The
// output has every left column followed by the right columns other than
// columnName. Both strategies produce the same multiset of rows, only the
// row order differs.
func JoinRelations(left *table.Relation, right *table.Relation, columnName string, strategy JoinStrategy) (*table.Relation, error) {
	layout, err := resolveJoinLayout(left.Schema(), right.Schema(), columnName)
	if err != nil {
		return nil, err
	}

	leftTuples := left.Tuples()
	rightTuples := right.Tuples()
	var matches []joinMatch
	switch strategy {
	case SortMergeJoinStrategy:
		leftTuples = SortTuples(leftTuples, layout.leftKeyIdx, plans.ASC)
		rightTuples = SortTuples(rightTuples, layout.rightKeyIdx, plans.ASC)
		matches = mergeJoinMatches(leftTuples, rightTuples, layout.leftKeyIdx, layout.rightKeyIdx)
	default:
		matches = hashJoinMatches(leftTuples, rightTuples, layout.leftKeyIdx, layout.rightKeyIdx)
	}

	return table.NewRelation(layout.output_schema, layout.materialize(leftTuples, rightTuples, matches)), nil
}

func keyAt(tuples []*tuple.Tuple, pos int, colIdx uint32) types.Value {
	return tuples[pos].GetValueAt(colIdx)
}
