// Package simerr defines the error kinds a simulation run can abort with.
//
// Network object callbacks return a plain error to the scheduler; these
// constructors wrap it with github.com/pkg/errors so the abort surfaces a
// stack trace pointing at the object that raised it.
package simerr

import "github.com/pkg/errors"

// Kind classifies why a simulation run aborted.
type Kind int

const (
	// UnroutableDestination means a Router had no route for a packet's
	// destination address.
	UnroutableDestination Kind = iota
	// InvariantViolation means an internal consistency check failed (an
	// ack beyond the last sent sequence number, a negative duration, an
	// event on an empty buffer).
	InvariantViolation
	// ConfigError means a metrics or topology configuration file was
	// malformed.
	ConfigError
)

func (k Kind) String() string {
	switch k {
	case UnroutableDestination:
		return "UnroutableDestination"
	case InvariantViolation:
		return "InvariantViolation"
	case ConfigError:
		return "ConfigError"
	default:
		return "Unknown"
	}
}

// Error is a simulation error tagged with a Kind, wrapped with a stack trace.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is a *Error with the same Kind, so callers can
// do errors.Is(err, &simerr.Error{Kind: simerr.UnroutableDestination})
// after wrapping with New.
func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	return ok && o.Kind == e.Kind
}

// New returns a new *Error of the given Kind, formatted like fmt.Errorf and
// annotated with a stack trace at the call site.
func New(kind Kind, format string, args ...any) error {
	return &Error{kind, errors.Errorf(format, args...)}
}

// Wrap annotates err with a stack trace and classifies it under kind.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{kind, errors.Wrap(err, message)}
}

// KindOf reports the Kind of err if it (or something it wraps) is a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
