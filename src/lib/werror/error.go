package werror

import "fmt"

var _ error = WError{}
var _ interface{ Unwrap() error } = WError{}

// WError is the context-free sibling of cerr.ContextualError, for adapters
// whose callers add the context.
type WError struct {
	// these are deliberately left public
	// so that embedders can inspect
	Message string
	Cause   error
}

func WrapError(message string, cause error) WError {
	return WError{
		Message: message,
		Cause:   cause,
	}
}

func WrapErrorf(cause error, format string, args ...interface{}) WError {
	return WrapError(fmt.Sprintf(format, args...), cause)
}

func (w WError) Unwrap() error {
	return w.Cause
}

func (w WError) Error() string {
	if w.Cause == nil {
		return w.Message
	}

	return fmt.Sprintf("%s: %s", w.Message, w.Cause.Error())
}
