package signal_handle

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/ryogrid/QueryRunner/common"
)

var isStopped atomic.Bool

func IsStopped() bool {
	return isStopped.Load()
}

// SignalHandlerTh blocks until SIGINT or SIGTERM, then marks the server as
// stopped, calls shutdown and notifies exitNotifyCh. SIGQUIT dumps the
// goroutine stacks and keeps the server running.
func SignalHandlerTh(shutdown func(), exitNotifyCh *chan bool) {
	sigChan := make(chan os.Signal, 1)
	signal.Ignore()
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	for sig := range sigChan {
		if sig == syscall.SIGQUIT {
			common.RuntimeStack("SIGQUIT")
			continue
		}
		common.ShPrintf(common.INFO, "received %s, shutting down\n", sig)
		break
	}

	// ---- after receive SIGINT or SIGTERM ---

	// stop handle request
	isStopped.Store(true)

	shutdown()

	// notify that shutdown operation finished to main thread
	*exitNotifyCh <- true
}
