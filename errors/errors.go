package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // probe registration
	PhaseRun      Phase = "run"      // probe execution
	PhaseLoad     Phase = "load"     // guest module loading
	PhaseLink     Phase = "link"     // guest module linkage
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindAlreadyExists Kind = "already_exists"
	KindInvalidInput  Kind = "invalid_input"
	KindRegistration  Kind = "registration"
	KindLinkFailure   Kind = "link_failure"
	KindCanceled      Kind = "canceled"
	KindInternal      Kind = "internal"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Probe  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Probe != "" {
		b.WriteString(" probe ")
		b.WriteString(e.Probe)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error for a probe lookup
func NotFound(phase Phase, probe string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Probe:  probe,
		Detail: "not registered",
	}
}

// AlreadyExists creates a duplicate-registration error
func AlreadyExists(probe string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindAlreadyExists,
		Probe:  probe,
		Detail: "already registered",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a registration error
func Registration(probe string, cause error) *Error {
	return &Error{
		Phase: PhaseRegister,
		Kind:  KindRegistration,
		Probe: probe,
		Cause: cause,
	}
}

// Link creates a guest linkage error
func Link(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLink,
		Kind:   KindLinkFailure,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a guest module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// Canceled creates a cancellation error for an interrupted probe run
func Canceled(probe string, cause error) *Error {
	return &Error{
		Phase: PhaseRun,
		Kind:  KindCanceled,
		Probe: probe,
		Cause: cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Internal creates an internal error with a formatted detail message
func Internal(phase Phase, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInternal,
		Detail: fmt.Sprintf(format, args...),
	}
}
