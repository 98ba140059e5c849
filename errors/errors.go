package errors

import "github.com/eaugeas/bstree/logs"

// Codes identifying the errors returned by the containers
const (
	// CodeInvalidValue is returned when a value cannot be stored
	CodeInvalidValue = 1000 + iota

	// CodeInvalidConfig is returned when the configuration of
	// a command cannot be parsed
	CodeInvalidConfig
)

// Error is a coded error that can describe itself in log
// entries
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
