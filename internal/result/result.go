package result

import "fmt"

// FailureReason classifies why part of a batch could not be processed.
type FailureReason string

const (
	// ReasonFormat indicates a source that is not in the expected tabular format,
	// such as a file missing the trade type header.
	ReasonFormat FailureReason = "format"
	// ReasonParsing indicates a row or source that could not be parsed.
	ReasonParsing FailureReason = "parsing"
	// ReasonError indicates an unexpected internal fault.
	ReasonError FailureReason = "error"
)

// FailureItem describes one failure captured while processing a batch.
//
// Failures are ordinary values: they are collected into a Result and returned
// to the caller, never raised as panics across package boundaries.
// Line is 1-based and zero when the failure is not tied to a single row.
type FailureItem struct {
	Reason FailureReason
	Msg    string
	Line   int
	Cause  error
}

// NewFailure builds a failure item with a formatted message and no line number.
func NewFailure(reason FailureReason, format string, args ...any) FailureItem {
	return FailureItem{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

// NewRowFailure builds a failure item scoped to a single source line.
func NewRowFailure(reason FailureReason, line int, format string, args ...any) FailureItem {
	return FailureItem{Reason: reason, Msg: fmt.Sprintf(format, args...), Line: line}
}

// WithCause attaches the underlying error to the failure item.
func (f FailureItem) WithCause(err error) FailureItem {
	f.Cause = err
	return f
}

// Error renders the failure as a single line, suitable for logs.
func (f FailureItem) Error() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", f.Reason, f.Line, f.Msg)
	}
	return fmt.Sprintf("%s: %s", f.Reason, f.Msg)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (f FailureItem) Unwrap() error { return f.Cause }

// Result pairs the values successfully produced from a batch with the
// failures captured along the way. The two collections are independent:
// a batch can yield both. Both preserve input order.
type Result[T any] struct {
	Values   []T
	Failures []FailureItem
}

// Of builds a result from pre-collected values and failures.
func Of[T any](values []T, failures ...FailureItem) Result[T] {
	return Result[T]{Values: values, Failures: failures}
}

// Failed builds a result with no values and the given failures.
func Failed[T any](failures ...FailureItem) Result[T] {
	return Result[T]{Failures: failures}
}

// Combine appends the other result onto this one, preserving order:
// values(a)+values(b), failures(a)+failures(b). Combining is associative.
func (r Result[T]) Combine(other Result[T]) Result[T] {
	return Result[T]{
		Values:   append(append([]T(nil), r.Values...), other.Values...),
		Failures: append(append([]FailureItem(nil), r.Failures...), other.Failures...),
	}
}

// AddValue appends one successfully produced value.
func (r *Result[T]) AddValue(v T) { r.Values = append(r.Values, v) }

// AddFailure appends one failure item.
func (r *Result[T]) AddFailure(f FailureItem) { r.Failures = append(r.Failures, f) }

// HasFailures reports whether any failure was recorded.
func (r Result[T]) HasFailures() bool { return len(r.Failures) > 0 }
