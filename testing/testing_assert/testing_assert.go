package testing_assert

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// Assert fails the test if the condition is false.
func Assert(tb testing.TB, condition bool, msg string, v ...interface{}) {
	tb.Helper()
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		tb.Fatalf("%s:%d: "+msg, append([]interface{}{filepath.Base(file), line}, v...)...)
	}
}

// AssertFalse fails the test if the condition is true.
func AssertFalse(tb testing.TB, condition bool, msg string, v ...interface{}) {
	tb.Helper()
	Assert(tb, !condition, msg, v...)
}

// SimpleAssert fails the test if the condition is false, without a message.
func SimpleAssert(tb testing.TB, condition bool) {
	tb.Helper()
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		tb.Fatalf("%s:%d: assertion failed", filepath.Base(file), line)
	}
}

// Ok fails the test if an err is not nil.
func Ok(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		tb.Fatalf("%s:%d: unexpected error: %s", filepath.Base(file), line, err.Error())
	}
}

// Nok fails the test if an err is nil.
func Nok(tb testing.TB, err error, msg string, v ...interface{}) {
	tb.Helper()
	if err == nil {
		_, file, line, _ := runtime.Caller(1)
		tb.Fatalf("%s:%d: expected an error: "+msg, append([]interface{}{filepath.Base(file), line}, v...)...)
	}
}

// Equals fails the test if exp is not equal to act.
func Equals(tb testing.TB, exp, act interface{}) {
	tb.Helper()
	if !reflect.DeepEqual(exp, act) {
		_, file, line, _ := runtime.Caller(1)
		tb.Fatalf("%s:%d:\n\n\texp: %s\n\n\tgot: %s", filepath.Base(file), line, fmt.Sprintf("%#v", exp), fmt.Sprintf("%#v", act))
	}
}
