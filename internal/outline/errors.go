package outline

import (
	"errors"
	"fmt"
)

// Error codes for outline loading.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeReadFailed   = "E004" // File could not be read
	ErrCodeNotFound     = "E005" // File not found
	ErrCodeDecodeFailed = "E006" // Document could not be decoded
	ErrCodeFormat       = "E008" // Unsupported document format

	ErrCodeMissingKind = "E201" // Node without a kind
	ErrCodeDuplicateID = "E202" // Two nodes share an ID
	ErrCodeEmptyChild  = "E203" // Null entry in a children list
)

// LoadError reports why an outline could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Path    string // Source file, empty for in-memory input
	Err     error  // Underlying error (optional)
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of a LoadError anywhere in err's chain, or "".
func ErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
