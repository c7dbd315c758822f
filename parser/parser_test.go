package parser

import (
	"errors"
	"testing"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
	testingpkg "github.com/ryogrid/QueryRunner/testing/testing_assert"
)

func parse(t *testing.T, queryStr string) *QueryInfo {
	t.Helper()
	queryInfo, err := ProcessQueryStr(&queryStr)
	testingpkg.Ok(t, err)
	return queryInfo
}

func parseErr(t *testing.T, queryStr string) string {
	t.Helper()
	queryInfo, err := ProcessQueryStr(&queryStr)
	testingpkg.Assert(t, queryInfo == nil, "no steps on a failed parse: %s", queryStr)
	testingpkg.Assert(t, errors.Is(err, common.ErrParse), "expected parse error for %q, got %v", queryStr, err)
	return err.Error()
}

func TestFullPipeline(t *testing.T) {
	queryInfo := parse(t, "FROM a.csv JOIN b.csv id ORDERBY score TAKE -3 SELECT name,score COUNTBY name")

	testingpkg.Equals(t, "a.csv", *queryInfo.FromSource_)
	testingpkg.Equals(t, 1, len(queryInfo.JoinSources_))
	testingpkg.Equals(t, "b.csv", *queryInfo.JoinSources_[0])

	steps := queryInfo.Steps_
	testingpkg.Equals(t, 6, len(steps))
	testingpkg.SimpleAssert(t, steps[0].(*plans.SourcePlanNode).GetSourceName() == "a.csv")

	join := steps[1].(*plans.JoinPlanNode)
	testingpkg.SimpleAssert(t, join.GetSourceName() == "b.csv")
	testingpkg.SimpleAssert(t, join.GetColumnName() == "id")

	orderby := steps[2].(*plans.OrderbyPlanNode)
	testingpkg.SimpleAssert(t, orderby.GetColumnName() == "score")
	testingpkg.SimpleAssert(t, orderby.GetOrderbyType() == plans.DESC)

	testingpkg.Equals(t, int64(-3), steps[3].(*plans.LimitPlanNode).GetLimit())
	testingpkg.Equals(t, []string{"name", "score"}, steps[4].(*plans.ProjectionPlanNode).GetColumnNames())
	testingpkg.Equals(t, "name", steps[5].(*plans.CountbyPlanNode).GetColumnName())
}

func TestWhitespace(t *testing.T) {
	queryInfo := parse(t, "  FROM\ta.csv   TAKE  2\n")
	testingpkg.Equals(t, 2, len(queryInfo.Steps_))
	testingpkg.Equals(t, "TAKE 2", queryInfo.Steps_[1].GetDebugStr())
}

func TestSourceOnly(t *testing.T) {
	queryInfo := parse(t, "FROM a.csv")
	testingpkg.Equals(t, 1, len(queryInfo.Steps_))
	testingpkg.Equals(t, plans.Source, queryInfo.Steps_[0].GetType())
}

func TestSelectKeepsDuplicates(t *testing.T) {
	queryInfo := parse(t, "FROM a.csv SELECT id,name,id")
	testingpkg.Equals(t, []string{"id", "name", "id"}, queryInfo.Steps_[1].(*plans.ProjectionPlanNode).GetColumnNames())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		query string
		msg   string
	}{
		{"", "No query entered"},
		{"   ", "No query entered"},
		{"a.csv SELECT id", "Missing data source"},
		{"SELECT id FROM a.csv", "Missing data source"},
		{"FROM", "Missing data source"},
		{"FROM TAKE 1", "Missing data source"},
		{"FROM a.csv bogus id", "Invalid input at 3rd token"},
		{"FROM a.csv TAKE 1 WHERE x", "Invalid input at 5th token"},
		{"FROM a.csv FROM b.csv", "Invalid input at 3rd token"},
		{"FROM a.csv SELECT id TAKE 1 ORDERBY id COUNTBY id JOIN b.csv id oops", "Invalid input at 14th token"},
		{"FROM a.csv SELECT TAKE 1", "Missing SELECT argument"},
		{"FROM a.csv TAKE", "Missing TAKE argument"},
		{"FROM a.csv ORDERBY COUNTBY id", "Missing ORDERBY argument"},
		{"FROM a.csv COUNTBY", "Missing COUNTBY argument"},
		{"FROM a.csv TAKE two", "TAKE requires integer input"},
		{"FROM a.csv TAKE 1.5", "TAKE requires integer input"},
		{"FROM a.csv JOIN b.csv", "Missing JOIN argument at 3rd token"},
		{"FROM a.csv JOIN b.csv TAKE 1", "Missing JOIN argument at 3rd token"},
		{"FROM a.csv JOIN SELECT id", "Missing JOIN argument at 3rd token"},
		{"FROM a.csv JOIN b.txt id", "Missing JOIN table at 3rd token"},
		{"FROM a.csv TAKE 1 JOIN b id", "Missing JOIN table at 5th token"},
	}

	for _, c := range cases {
		testingpkg.Equals(t, c.msg, parseErr(t, c.query))
	}
}

func TestOrdinal(t *testing.T) {
	expected := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 101: "101st", 111: "111th",
	}
	for n, s := range expected {
		testingpkg.Equals(t, s, ordinal(n))
	}
}
