package metadata

import "fmt"

// ConnectivityError means the source database was unreachable or rejected
// the connection. It is surfaced to the caller as-is.
type ConnectivityError struct {
	Source SourceType
	Err    error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: connect: %v", e.Source, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// QueryError means a catalog introspection query was rejected by the
// source, e.g. for insufficient privilege.
type QueryError struct {
	Source SourceType
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: introspection query: %v", e.Source, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
