package config

import (
	stderr "errors"

	errs "github.com/eaugeas/bstree/errors"
)

// ErrAlreadyParsed is returned when attempting to parse the
// flags of a Parser a second time
var ErrAlreadyParsed = stderr.New("flags have already been parsed")

// ErrParseFlags is returned when the command line arguments
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// Coded returns the error as a coded error that can be logged
func (e ErrParseFlags) Coded() *errs.Error {
	return &errs.Error{ErrorCode: errs.CodeInvalidConfig, Description: e.Error()}
}
