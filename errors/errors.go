package errors

import (
	"fmt"

	"github.com/eaugeas/bstree/logs"
)

const (
	// ErrCodeInvalidValue is used when a value cannot be parsed
	// into a tree value
	ErrCodeInvalidValue = 1000 + iota

	// ErrCodeInvalidMode is used when the requested insert mode
	// does not exist
	ErrCodeInvalidMode

	// ErrCodeInvalidConfig is used when the configuration cannot
	// be loaded
	ErrCodeInvalidConfig
)

// Error is returned by the outer layers of the module when they
// fail to satisfy a request
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates an Error with a formatted description
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
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
