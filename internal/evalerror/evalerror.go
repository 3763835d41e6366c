// Package evalerror implements the closed error taxonomy of spec §7.
// These are the "soft" failures a caller is expected to translate into
// diagnostics; conditions that indicate a bug in the analyzer's output
// (comparing two closures, a built-in's argument shape) are Go panics
// instead of returned errors (spec §7, "Propagation"). An out-of-range
// local index is returned as a TypeError.
//
// The teacher encodes its analogous soft-failure channel as an *Error
// runtime object flowing through the same return slot as ordinary
// values (funxy's internal/evaluator/object_control.go), because its
// host language has no split between a "value" and "error" return.
// Go's (Value, error) idiom already gives us that split for free, so
// the evaluator returns plain Go errors of the types below instead of
// reifying an error variant inside the value universe.
package evalerror

import "fmt"

// TypeError reports an operator/argument type mismatch. TraceID is
// populated only when the caller opts into Interpreter.TraceID (spec's
// domain-stack UUID wiring); it is empty otherwise.
type TypeError struct {
	Message string
	TraceID string
}

func (e *TypeError) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("%s [trace=%s]", e.Message, e.TraceID)
	}
	return e.Message
}

// NewTypeError builds a TypeError with a formatted message.
func NewTypeError(format string, args ...interface{}) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// Unsupported reports a semantically valid construct this evaluator
// refuses: public references, free inputs, query-valued symbols.
type Unsupported struct {
	Message string
	TraceID string
}

func (e *Unsupported) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("%s [trace=%s]", e.Message, e.TraceID)
	}
	return e.Message
}

func NewUnsupported(format string, args ...interface{}) *Unsupported {
	return &Unsupported{Message: fmt.Sprintf(format, args...)}
}

// OutOfBounds reports a negative or too-large array index.
type OutOfBounds struct {
	Message string
}

func (e *OutOfBounds) Error() string { return e.Message }

func NewOutOfBounds(format string, args ...interface{}) *OutOfBounds {
	return &OutOfBounds{Message: fmt.Sprintf(format, args...)}
}

// NoMatch reports an exhausted match expression. It carries no
// message: constructing it is allocation-free (spec §7).
type NoMatch struct{}

func (e *NoMatch) Error() string { return "no match" }

// ErrNoMatch is the single shared NoMatch instance.
var ErrNoMatch = &NoMatch{}

// SymbolNotFound reports that the resolver could not find a global.
type SymbolNotFound struct {
	Name string
}

func (e *SymbolNotFound) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Name)
}

func NewSymbolNotFound(name string) *SymbolNotFound {
	return &SymbolNotFound{Name: name}
}

// DataNotAvailable reports that the resolver cannot answer eval_expr in
// the current context. It is explicitly non-fatal: a caller may retry
// later with more context (spec §7).
type DataNotAvailable struct {
	Message string
}

func (e *DataNotAvailable) Error() string {
	if e.Message == "" {
		return "data not available"
	}
	return e.Message
}

// ErrDataNotAvailable is the default DataNotAvailable instance, used by
// resolvers that cannot answer eval_expr at all.
var ErrDataNotAvailable = &DataNotAvailable{}

// FailedAssertion is raised exclusively by std::check::panic.
type FailedAssertion struct {
	Message string
}

func (e *FailedAssertion) Error() string { return e.Message }

func NewFailedAssertion(message string) *FailedAssertion {
	return &FailedAssertion{Message: message}
}
