// Package apperr defines the error taxonomy shared by the stores and the
// command layer. Every error is recoverable: the dispatcher converts them to
// user-facing messages and the read loop continues.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an assistant error.
type Kind int

const (
	// KindValidation — a field value failed its format rule.
	KindValidation Kind = iota
	// KindDuplicate — a name, title or phone collides with an existing one.
	KindDuplicate
	// KindNotFound — a lookup missed.
	KindNotFound
	// KindArity — wrong argument count for a resolved command.
	KindArity
	// KindAmbiguous — no exact or confident fuzzy command match.
	KindAmbiguous
)

// Error carries a kind plus a message that is safe to show to the user as-is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

func Duplicatef(format string, args ...any) *Error {
	return newf(KindDuplicate, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func Arityf(format string, args ...any) *Error {
	return newf(KindArity, format, args...)
}

func Ambiguousf(format string, args ...any) *Error {
	return newf(KindAmbiguous, format, args...)
}

// Is reports whether err (or anything in its chain) is an assistant error of
// the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// As extracts the *Error from err's chain, or nil.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
