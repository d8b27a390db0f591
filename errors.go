package mint

import (
	"fmt"
	"reflect"
)

// A MarshalerError represents an error from calling a MarshalMINT method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "mint: error calling MarshalMINT for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }

// An UnmarshalerError represents an error from calling an UnmarshalMINT
// or UnmarshalText method.
type UnmarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *UnmarshalerError) Error() string {
	return "mint: error calling UnmarshalMINT for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *UnmarshalerError) Unwrap() error { return e.Err }

// ParseError represents a single syntax error found during a strict
// decode. Line and Column are 1-based.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

// ParseErrors is a slice of ParseError that implements the error
// interface, so a strict decode can report every syntax error at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The collection's message reports the first error.
	return fmt.Sprintf("mint: parsing error at line %d, column %d: %s", p[0].Line, p[0].Column, p[0].Message)
}
