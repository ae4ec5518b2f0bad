package etl

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the step of the run that failed.
type Kind int

const (
	KindConfig Kind = iota + 1
	KindConnection
	KindSchema
	KindQuery
	KindWrite
	KindCompression
	KindMirror
)

var kindMessages = map[Kind]string{
	KindConfig:      "error loading configuration",
	KindConnection:  "error connecting to database",
	KindSchema:      "error ensuring database schema",
	KindQuery:       "error extracting data from database",
	KindWrite:       "error creating csv file",
	KindCompression: "error creating gzip file",
	KindMirror:      "error mirroring export to MongoDB",
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is returned by every failing step; all of them are fatal for the run.
type Error struct {
	Kind Kind
	Err  error
}

func NewError(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through to the driver or filesystem error.
func (e *Error) Cause() error { return e.Err }

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
