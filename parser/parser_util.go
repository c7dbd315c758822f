package parser

import (
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

type ClauseType int32

const (
	FROM ClauseType = iota
	SELECT
	TAKE
	ORDERBY
	COUNTBY
	JOIN
)

var clauseKeywords = map[string]ClauseType{
	"FROM":    FROM,
	"SELECT":  SELECT,
	"TAKE":    TAKE,
	"ORDERBY": ORDERBY,
	"COUNTBY": COUNTBY,
	"JOIN":    JOIN,
}

var keywordSet = func() mapset.Set[string] {
	ret := mapset.NewSet[string]()
	for keyword := range clauseKeywords {
		ret.Add(keyword)
	}
	return ret
}()

func IsKeyword(token string) bool {
	return keywordSet.Contains(token)
}

type token struct {
	text string
	pos  int // 1-based position in the query
}

// ordinal renders n as "1st", "2nd", "3rd", "4th", "11th", "22nd" ...
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
