package errors

import (
	"errors"
)

const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal"
)

var (
	InvalidInput = Error{CodeInvalidInput, errors.New("invalid input")}
	NotFound     = Error{CodeNotFound, errors.New("not found")}
	Internal     = Error{CodeInternal, errors.New("internal error")}
)

type Error struct {
	Code string
	Err  error
}

func (e Error) Unwrap() error {
	return e.Err
}

func (e Error) Error() string {
	return e.Err.Error()
}

// CodeOf returns the code of the first Error in the chain, or CodeInternal
// for errors that were not produced by this module.
func CodeOf(err error) string {
	e := Error{}
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// ExitCode maps an error to a process exit status for command line tools.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch CodeOf(err) {
	case CodeInvalidInput:
		return 2
	case CodeNotFound:
		return 3
	default:
		return 1
	}
}
