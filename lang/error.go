package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrMalformedLine   = NewError("malformed procfile line")
	ErrValidation      = NewError("invalid procfile")
	ErrDecode          = NewError("input is not valid UTF-8")
	ErrReadInput       = NewError("failed to read input")
	ErrFilterCompile   = NewError("filter compilation failed")
	ErrFilterEvaluate  = NewError("filter evaluation failed")
	ErrProcessNotFound = NewError("process type not found")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging

	// base is the sentinel this error was derived from.
	base *Error
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
// Errors that already are (or wrap) an *Error are returned unchanged.
func WrapError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// "<msg>: <err>", "<msg>", or "<err>", depending on which fields are set.
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && (e == t || (e.base != nil && e.base == t))
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		var lv slog.LogValuer
		if errors.As(e.err, &lv) {
			attrs = append(attrs, slog.Any("cause", lv))
		} else {
			attrs = append(attrs, slog.String("cause", e.err.Error()))
		}
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns a copy of the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
		base:  e.root(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance; the receiver is unchanged.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// MalformedLineError reports a logical line that does not match the
// Procfile grammar.
type MalformedLineError struct {
	// Line is the 1-based number of the first raw line of the logical line.
	Line int
	// Text is the offending line, trimmed.
	Text string
}

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + ErrMalformedLine.msg +
		" " + strconv.Quote(e.Text)
}

// Is reports whether target is [ErrMalformedLine].
func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// LogValue implements slog.LogValuer.
func (e *MalformedLineError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrMalformedLine.msg),
		slog.Int("line", e.Line),
		slog.String("text", e.Text),
	)
}

// ValidationError lists every semantic violation found in an otherwise
// well-formed Procfile. It is never empty.
type ValidationError struct {
	// Messages are human-readable violations: duplicate process types first,
	// then duplicate variables.
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return ErrValidation.msg + ": " + strings.Join(e.Messages, " ")
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// LogValue implements slog.LogValuer.
func (e *ValidationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrValidation.msg),
		slog.Any("violations", e.Messages),
	)
}
