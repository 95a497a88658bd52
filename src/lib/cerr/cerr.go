package cerr

import (
	"fmt"
)

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

type ContextFields map[string]interface{}

type Context struct {
	ContextFields ContextFields
}

type ContextualError struct {
	Context Context
	Message string
	Cause   error
}

type WrappedContext struct {
	context Context
	cause   error
}

func Field(key string, value interface{}) Context {
	return Context{}.Field(key, value)
}

func Wrap(cause error) WrappedContext {
	return Context{}.Wrap(cause)
}

func Error(message string) error {
	return Context{}.Error(message)
}

// Field returns a copy of the context with the key set, so a base context
// can be shared between several error sites.
func (c Context) Field(key string, value interface{}) Context {
	fields := ContextFields{}
	for k, v := range c.ContextFields {
		fields[k] = v
	}
	fields[key] = value

	return Context{ContextFields: fields}
}

func (c Context) Wrap(cause error) WrappedContext {
	return WrappedContext{
		context: c,
		cause:   cause,
	}
}

func (c Context) Error(message string) error {
	return ContextualError{
		Context: c,
		Message: message,
	}
}

func (w WrappedContext) Error(message string) error {
	fields := ContextFields{}
	for k, v := range w.context.ContextFields {
		fields[k] = v
	}

	// inner contextual errors contribute their fields so that a single log line carries all of them
	if inner, ok := w.cause.(ContextualError); ok {
		for k, v := range inner.Context.ContextFields {
			if _, exists := fields[k]; !exists {
				fields[k] = v
			}
		}
	}

	return ContextualError{
		Context: Context{ContextFields: fields},
		Message: message,
		Cause:   w.cause,
	}
}

func (c ContextualError) Unwrap() error {
	return c.Cause
}

func (c ContextualError) Error() string {
	if c.Cause == nil {
		return c.Message
	}

	return fmt.Sprintf("%s: %s", c.Message, c.Cause.Error())
}
