package config

import (
	"errors"
	"fmt"
)

// ErrAlreadyParsed is returned when Parse is called more than once
var ErrAlreadyParsed = errors.New("flags have already been parsed")

// ErrParseFlags is returned when the arguments cannot be parsed
// into flags
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}
