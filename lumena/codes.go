package lumena

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAttached is generated when an operation needs a live host and
	// the RC endpoint cannot be reached.
	ErrNotAttached = errors.New("not attached to a running Lumena instance")

	// ErrBadResponse is generated when the host replies with a payload of
	// the wrong type for the method that was called.
	ErrBadResponse = errors.New("unexpected response type from host")
)

// Code is a host-side RC error code.  Every RC reply carries one; zero is
// success and anything else names the failure.
type Code int

// The codes a Lumena host returns in RC replies.
const (
	CodeOK Code = iota
	CodeUnknownApplication
	CodeUnknownHandle
	CodeIndexRange
	CodeWrongType
	CodeBufferSize
	CodeNotSpots
	CodeNotContainer
	CodeLengthMismatch
	CodeBadArgument
)

// ErrCodes is a map of error codes (ints) to error strings
var ErrCodes = map[Code]string{
	0: "RC_OK",
	1: "RC_ERR_UNKNOWN_APPLICATION",
	2: "RC_ERR_UNKNOWN_HANDLE",
	3: "RC_ERR_INDEX_RANGE",
	4: "RC_ERR_WRONG_TYPE",
	5: "RC_ERR_BUFFER_SIZE",
	6: "RC_ERR_NOT_SPOTS",
	7: "RC_ERR_NOT_CONTAINER",
	8: "RC_ERR_LENGTH_MISMATCH",
	9: "RC_ERR_BAD_ARGUMENT",
}

func (e Code) Error() string {
	if s, ok := ErrCodes[e]; ok {
		return fmt.Sprintf("%d - %s", int(e), s)
	}
	return fmt.Sprintf("%d - UNKNOWN_ERROR_CODE", int(e))
}

// Error returns nil on the success code or an error object on failing ones
func Error(code int) error {
	if code == 0 {
		return nil
	}
	return Code(code)
}
