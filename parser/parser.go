package parser

import (
	"strconv"
	"strings"

	"github.com/golang-collections/collections/queue"
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/plans"
)

type QueryInfo struct {
	FromSource_  *string      // FROM
	JoinSources_ []*string    // JOIN, in query order
	Steps_       []plans.Plan // every clause including FROM
}

// ProcessQueryStr parses a pipeline query such as
//
//	FROM a.csv JOIN b.csv id ORDERBY score TAKE 3 SELECT name,score
//
// Tokens are separated by whitespace. The query starts with FROM and a
// source, every following clause is a keyword and its arguments.
func ProcessQueryStr(queryStr *string) (*QueryInfo, error) {
	fields := strings.Fields(*queryStr)
	if len(fields) == 0 {
		return nil, common.NewParseError("No query entered")
	}
	if fields[0] != "FROM" {
		return nil, common.NewParseError("Missing data source")
	}

	tokens := queue.New()
	for idx, text := range fields {
		tokens.Enqueue(&token{text, idx + 1})
	}
	tokens.Dequeue() // FROM

	if tokens.Len() == 0 || IsKeyword(peekText(tokens)) {
		return nil, common.NewParseError("Missing data source")
	}
	source := tokens.Dequeue().(*token).text
	ret := &QueryInfo{
		FromSource_:  &source,
		JoinSources_: make([]*string, 0),
		Steps_:       []plans.Plan{plans.NewSourcePlanNode(source)},
	}

	for tokens.Len() > 0 {
		keyword := tokens.Dequeue().(*token)
		clause, ok := clauseKeywords[keyword.text]
		if !ok || clause == FROM {
			return nil, common.NewParseError("Invalid input at " + ordinal(keyword.pos) + " token")
		}

		if clause == JOIN {
			step, err := processJoin(tokens, keyword)
			if err != nil {
				return nil, err
			}
			joinSource := step.GetSourceName()
			ret.JoinSources_ = append(ret.JoinSources_, &joinSource)
			ret.Steps_ = append(ret.Steps_, step)
			continue
		}

		if tokens.Len() == 0 || IsKeyword(peekText(tokens)) {
			return nil, common.NewParseError("Missing " + keyword.text + " argument")
		}
		arg := tokens.Dequeue().(*token).text

		switch clause {
		case SELECT:
			ret.Steps_ = append(ret.Steps_, plans.NewProjectionPlanNode(strings.Split(arg, ",")))
		case TAKE:
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, common.NewParseError("TAKE requires integer input")
			}
			ret.Steps_ = append(ret.Steps_, plans.NewLimitPlanNode(n))
		case ORDERBY:
			ret.Steps_ = append(ret.Steps_, plans.NewOrderbyPlanNode(arg, plans.DESC))
		case COUNTBY:
			ret.Steps_ = append(ret.Steps_, plans.NewCountbyPlanNode(arg))
		}
	}

	return ret, nil
}

func processJoin(tokens *queue.Queue, keyword *token) (*plans.JoinPlanNode, error) {
	at := ordinal(keyword.pos) + " token"
	if tokens.Len() < 2 {
		return nil, common.NewParseError("Missing JOIN argument at " + at)
	}
	source := tokens.Dequeue().(*token).text
	column := tokens.Dequeue().(*token).text
	if IsKeyword(source) || IsKeyword(column) {
		return nil, common.NewParseError("Missing JOIN argument at " + at)
	}
	if !strings.Contains(source, ".csv") {
		return nil, common.NewParseError("Missing JOIN table at " + at)
	}
	return plans.NewJoinPlanNode(source, column), nil
}

func peekText(tokens *queue.Queue) string {
	return tokens.Peek().(*token).text
}
