package common

import "fmt"

type LogLevel int32

const (
	DEBUG_INFO_DETAIL LogLevel = 1
	DEBUG_INFO        LogLevel = 2
	RDB_OP_FUNC_CALL  LogLevel = 4
	DEBUGGING         LogLevel = 8
	INFO              LogLevel = 16
	WARN              LogLevel = 32
	ERROR             LogLevel = 64
	FATAL             LogLevel = 128
)

var logLevelNames = map[string]LogLevel{
	"debug_detail": DEBUG_INFO_DETAIL | DEBUG_INFO | RDB_OP_FUNC_CALL | DEBUGGING | INFO | WARN | ERROR | FATAL,
	"debug":        DEBUG_INFO | DEBUGGING | INFO | WARN | ERROR | FATAL,
	"info":         INFO | WARN | ERROR | FATAL,
	"warn":         WARN | ERROR | FATAL,
	"error":        ERROR | FATAL,
	"silent":       0,
}

// ParseLogLevel converts a level name used in config files into a LogLevelSetting mask.
func ParseLogLevel(name string) (LogLevel, error) {
	if lvl, ok := logLevelNames[name]; ok {
		return lvl, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

func ShPrintf(logLevel LogLevel, fmtStl string, a ...interface{}) {
	if logLevel&LogLevelSetting > 0 {
		fmt.Printf(fmtStl, a...)
	}
}
