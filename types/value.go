package types

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

// A Value is a single cell of a relation. It is either an Integer or a
// Varchar and only the field matching valueType is meaningful.
type Value struct {
	valueType TypeID
	integer   int64
	varchar   string
}

func NewInteger(value int64) Value {
	return Value{valueType: Integer, integer: value}
}

func NewVarchar(value string) Value {
	return Value{valueType: Varchar, varchar: value}
}

// InferValue builds the Value for one cell of source text. The cell is an
// Integer only when it is a non-empty run of ASCII digits which fits in
// int64. Signs, decimal points and everything else stay Varchar, so "-5"
// and "1.5" compare as text.
func InferValue(text string) Value {
	if !isDigits(text) {
		return NewVarchar(text)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// out of int64 range
		return NewVarchar(text)
	}
	return NewInteger(n)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

func (v Value) ToInteger() int64 {
	return v.integer
}

func (v Value) ToVarchar() string {
	return v.varchar
}

// CompareTo returns -1, 0 or 1. Integers compare numerically, Varchars
// bytewise, and every Integer sorts before every Varchar.
func (v Value) CompareTo(right Value) int {
	if v.valueType != right.valueType {
		if v.valueType < right.valueType {
			return -1
		}
		return 1
	}

	switch v.valueType {
	case Integer:
		switch {
		case v.integer < right.integer:
			return -1
		case v.integer > right.integer:
			return 1
		}
		return 0
	case Varchar:
		return strings.Compare(v.varchar, right.varchar)
	}
	return 0
}

func (v Value) CompareEquals(right Value) bool {
	return v.CompareTo(right) == 0
}

func (v Value) CompareLessThan(right Value) bool {
	return v.CompareTo(right) < 0
}

// Serialize returns a byte form which is equal for two values exactly when
// CompareEquals is true. It is used as hash input.
func (v Value) Serialize() []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(byte(v.valueType))
	switch v.valueType {
	case Integer:
		binary.Write(buf, binary.LittleEndian, v.integer)
	case Varchar:
		buf.WriteString(v.varchar)
	}
	return buf.Bytes()
}

func (v Value) ToString() string {
	switch v.valueType {
	case Integer:
		return strconv.FormatInt(v.integer, 10)
	case Varchar:
		return v.varchar
	}
	return ""
}
