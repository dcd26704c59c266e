package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both missing rows and rows owned by someone else.
	ErrNotFound = errors.New("record not found")
	// ErrPoolExhausted means no connection became free within the acquire timeout.
	ErrPoolExhausted = errors.New("connection pool exhausted")
	// ErrConnection means the database could not be reached.
	ErrConnection = errors.New("database unreachable")
)

// ConflictError reports a statement rejected by an integrity constraint.
type ConflictError struct {
	Table      string
	Constraint string
	// Field is the column the constraint guards, when it can be inferred.
	Field string
	Err   error
}

func (e *ConflictError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("conflict on %s.%s (%s)", e.Table, e.Field, e.Constraint)
	}
	return fmt.Sprintf("conflict on %s (%s)", e.Table, e.Constraint)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// DataError reports a value the database rejected as malformed or out of
// range for its column.
type DataError struct {
	Table string
	// Field is the offending column, when the server names it.
	Field string
	Code  string
	Err   error
}

func (e *DataError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid data for %s.%s (SQLSTATE %s)", e.Table, e.Field, e.Code)
	}
	return fmt.Sprintf("invalid data for %s (SQLSTATE %s)", e.Table, e.Code)
}

func (e *DataError) Unwrap() error { return e.Err }
