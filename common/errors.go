package common

import "errors"

// error kinds a query can fail with
var (
	ErrParse          = errors.New("parse error")
	ErrSource         = errors.New("source error")
	ErrEmptySource    = errors.New("Empty file")
	ErrIO             = errors.New("io error")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrSchemaConflict = errors.New("schema conflict")
)

// QueryError is returned by every stage of a query. Msg is what the caller of
// the query sees, Kind is one of the Err* values above and Cause is the
// underlying error if any.
type QueryError struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *QueryError) Error() string { return e.Msg }

func (e *QueryError) Unwrap() error { return e.Cause }

func (e *QueryError) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	// empty and unreadable sources are both source errors
	return target == ErrSource && (e.Kind == ErrEmptySource || e.Kind == ErrIO)
}

func NewParseError(msg string) error {
	return &QueryError{Kind: ErrParse, Msg: msg}
}

func NewUnknownColumnError(name string) error {
	return &QueryError{Kind: ErrUnknownColumn, Msg: "column " + name + " does not exist"}
}

func NewSchemaConflictError(name string) error {
	return &QueryError{Kind: ErrSchemaConflict, Msg: "duplicate column " + name + " in output schema"}
}

// ErrServerStopped is returned for queries submitted after shutdown began.
var ErrServerStopped = errors.New("Server is stopped")

func NewServerStoppedError() error {
	return &QueryError{Kind: ErrServerStopped, Msg: ErrServerStopped.Error()}
}
