package common

import (
	"runtime"

	"github.com/devlights/gomy/output"
)

func SH_Assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// RuntimeStack writes the stacks of all goroutines to stdout.
// The server calls it on SIGQUIT to inspect queries which seem stuck.
func RuntimeStack(label string) {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}
	output.Stdoutl("=== "+label+" ", string(buf))
}
