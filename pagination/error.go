package pagination

import (
	"errors"
	"fmt"
)

// ErrorCode is the type for pagination error codes.
type ErrorCode int

func (c ErrorCode) String() string {
	if text, ok := errCodeText[c]; ok {
		return text
	}
	return fmt.Sprintf("error code %d", int(c))
}

// ErrorInfo is the error type returned by the pagination controller. It always
// has a non-zero Code and may carry the underlying error that caused it.
type ErrorInfo struct {
	Code ErrorCode

	err error
}

// Error implements the builtin error interface.
func (e *ErrorInfo) Error() string {
	if e.err == nil {
		return fmt.Sprintf("[ErrorInfo code=%d] %s", int(e.Code), e.Code)
	}
	return fmt.Sprintf("[ErrorInfo code=%d] %s: %v", int(e.Code), e.Code, e.err)
}

// Unwrap implements the implicit interface that errors.Unwrap understands.
func (e *ErrorInfo) Unwrap() error {
	return e.err
}

// Message returns the text of the underlying error, if any.
func (e *ErrorInfo) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func newError(code ErrorCode, err error) *ErrorInfo {
	var info *ErrorInfo
	if errors.As(err, &info) && info.Code == code {
		return info
	}
	return &ErrorInfo{Code: code, err: err}
}

func newErrorf(code ErrorCode, format string, v ...interface{}) *ErrorInfo {
	return &ErrorInfo{Code: code, err: fmt.Errorf(format, v...)}
}

// Code returns the code of the first *ErrorInfo in err's chain, or ErrNotSet.
func Code(err error) ErrorCode {
	var info *ErrorInfo
	if errors.As(err, &info) {
		return info.Code
	}
	return ErrNotSet
}

// Reasons a Send call can fail with ErrPreconditionFailed. Match them with
// errors.Is.
var (
	ErrNoDestination     = errors.New("channel not set")
	ErrNoPages           = errors.New("pages not set")
	ErrNoAuthorizedUsers = errors.New("authorized users not set")
	ErrSessionStarted    = errors.New("pagination already sent")
)
