package platform

import "fmt"

// InvocationError reports an accessor call whose target does not expose the
// requested operation, or whose arguments could not be coerced to the
// operation's parameter types. It is never retried.
type InvocationError struct {
	Operation string
	HandleID  int
	Type      string
	Reason    string
	Cause     error
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("invoke %s on %s#%d: %s", e.Operation, e.Type, e.HandleID, e.Reason)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// Code is the machine-readable error code.
func (e *InvocationError) Code() string {
	return "invocation_failed"
}

func invocationError(h Handle, op, reason string, cause error) *InvocationError {
	e := &InvocationError{Operation: op, Reason: reason, Cause: cause}
	if h != nil {
		e.HandleID = h.ID()
		e.Type = h.Type()
	}
	return e
}
