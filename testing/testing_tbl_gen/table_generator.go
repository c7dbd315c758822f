package testing_tbl_gen

import (
	"math/rand"
	"strconv"

	"github.com/ryogrid/QueryRunner/storage/table"
	"github.com/ryogrid/QueryRunner/storage/table/schema"
	"github.com/ryogrid/QueryRunner/storage/tuple"
	"github.com/ryogrid/QueryRunner/types"
)

type ColumnInsertMeta struct {
	/**
	 * Name of the column
	 */
	Name_ string
	/**
	 * Type of the column
	 */
	Type_ types.TypeID
	/**
	 * Distribution of values
	 */
	Dist_ int32
	/**
	 * min value of the column
	 */
	Min_ int64
	/**
	 * max value of the column
	 */
	Max_ int64
	/**
	 * Counter to generate serial data
	 */
	Serial_counter_ int64
}

type TableInsertMeta struct {
	/**
	 * Name of the table
	 */
	Name_ string
	/**
	 * Number of rows
	 */
	Num_rows_ uint32
	/**
	 * Columns
	 */
	Col_meta_ []*ColumnInsertMeta
}

const DistSerial int32 = 0
const DistUniform int32 = 1

func GenNumericValues(rng *rand.Rand, col_meta *ColumnInsertMeta, count uint32) []types.Value {
	var values []types.Value
	if col_meta.Dist_ == DistSerial {
		for i := 0; i < int(count); i++ {
			values = append(values, types.NewInteger(col_meta.Serial_counter_))
			col_meta.Serial_counter_ += 1
		}
		return values
	}

	for i := 0; i < int(count); i++ {
		values = append(values, types.NewInteger(col_meta.Min_+rng.Int63n(col_meta.Max_-col_meta.Min_+1)))
	}
	return values
}

// GenVarcharValues draws from the same range as GenNumericValues but with a
// "v" prefix, so the text never infers back to an Integer.
func GenVarcharValues(rng *rand.Rand, col_meta *ColumnInsertMeta, count uint32) []types.Value {
	var values []types.Value
	for _, val := range GenNumericValues(rng, col_meta, count) {
		values = append(values, types.NewVarchar("v"+strconv.FormatInt(val.ToInteger(), 10)))
	}
	return values
}

func MakeValues(rng *rand.Rand, col_meta *ColumnInsertMeta, count uint32) []types.Value {
	switch col_meta.Type_ {
	case types.Integer:
		return GenNumericValues(rng, col_meta, count)
	case types.Varchar:
		return GenVarcharValues(rng, col_meta, count)
	default:
		panic("Not yet implemented")
	}
}

// GenerateRelation fills a relation as described by table_meta.
func GenerateRelation(rng *rand.Rand, table_meta *TableInsertMeta) *table.Relation {
	names := make([]string, 0, len(table_meta.Col_meta_))
	columns := make([][]types.Value, 0, len(table_meta.Col_meta_))
	for _, col_meta := range table_meta.Col_meta_ {
		names = append(names, col_meta.Name_)
		columns = append(columns, MakeValues(rng, col_meta, table_meta.Num_rows_))
	}
	schema_ := schema.NewSchemaFromNames(names)

	tuples := make([]*tuple.Tuple, 0, table_meta.Num_rows_)
	for i := 0; i < int(table_meta.Num_rows_); i++ {
		var entry []types.Value
		for idx := range table_meta.Col_meta_ {
			entry = append(entry, columns[idx][i])
		}
		tuples = append(tuples, tuple.NewTupleFromSchema(entry, schema_))
	}
	return table.NewRelation(schema_, tuples)
}

// ToSourceText renders rel in the comma separated source format. For a
// relation from GenerateRelation with at least one row, loading the text
// again yields the same rows and cell types.
func ToSourceText(rel *table.Relation) []byte {
	return []byte(rel.ToString())
}
