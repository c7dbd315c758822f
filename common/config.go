package common

import (
	"encoding/binary"
	"time"
)

var LogLevelSetting = INFO | WARN | ERROR | FATAL

// when true, latches created by NewRWLatch report potential deadlocks
var EnableDeadlockDetection bool = false
var DeadlockTimeout time.Duration = 30 * time.Second

var DefaultJoinStrategy = "hash"

var MaxQueryThreadNum uint64 = 8

const (
	// size of the length header which precedes every message body
	HeaderSize = 4
	// upper bound of one message body
	MaxMessageSize = 64 * 1024 * 1024
	// name of the column COUNTBY appends
	CountColumnName = "count"
	// message returned when a pipeline ends with no rows
	NoDataMessage = "No data returned."
	// default listen address of the framed TCP transport
	DefaultTCPAddr = "127.0.0.1:19998"
	// default listen address of the HTTP transport
	DefaultHTTPAddr = "0.0.0.0:19999"
	// initial and max size of a single source line buffer
	SourceLineBufferSize    = 64 * 1024
	MaxSourceLineBufferSize = 16 * 1024 * 1024
)

var ByteOrder binary.ByteOrder = binary.BigEndian
