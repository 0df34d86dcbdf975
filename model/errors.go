package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so callers can tell fatal from recoverable.
type ErrorKind int

const (
	// KindConnection: server unreachable or credentials rejected. Fatal at startup.
	KindConnection ErrorKind = iota + 1
	// KindSchema: database/table bootstrap failed. Logged, not fatal.
	KindSchema
	// KindStatement: a single CRUD statement failed. Reported, back to menu.
	KindStatement
	// KindInput: user input rejected by validation. Workflow aborts.
	KindInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindSchema:
		return "schema"
	case KindStatement:
		return "statement"
	case KindInput:
		return "input"
	}
	return "unknown"
}

// Fatal reports whether the process should stop.
func (k ErrorKind) Fatal() bool {
	return k == KindConnection
}

var (
	ErrTrackNotFound = errors.New("track not found")
	ErrTrackRequired = errors.New("track title is required")
)

// Error carries the kind of failure and the operation that produced it.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and operation name.
func NewError(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsFatal reports whether err should terminate the process.
func IsFatal(err error) bool {
	return KindOf(err).Fatal()
}
