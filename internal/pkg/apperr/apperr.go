// Package apperr defines the typed failures the API maps onto HTTP status
// codes: configuration (store not initialized), validation (malformed input)
// and not-found. Anything else is treated as an internal store fault.
package apperr

import "errors"

type Kind int

const (
	KindConfiguration Kind = iota
	KindValidation
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Configuration(message string) error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
