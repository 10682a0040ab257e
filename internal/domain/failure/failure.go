// internal/domain/failure/failure.go
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies every error the bot produces.
type Kind string

const (
	KindNetwork       Kind = "network"        // fetch failed below HTTP (connection, timeout)
	KindHTTPStatus    Kind = "http_status"    // API answered with a non-200 code
	KindFormat        Kind = "format"         // response shape is not what we expect
	KindUnknownStatus Kind = "unknown_status" // homework status outside the verdict table
	KindDelivery      Kind = "delivery"       // Telegram send failed
	KindFatalConfig   Kind = "fatal_config"   // required configuration is absent
)

// Error is a tagged error value. Detail is the human-readable part that
// ends up in notifications; Err, when set, is the underlying cause.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error of the given kind with a formatted detail.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around cause.
func Wrap(kind Kind, cause error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Signature identifies err for deduplication: the kind and detail of the
// first *Error in the chain, without the underlying cause. Cause text from
// net/http carries per-attempt data such as the dialed address.
func Signature(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s: %s", fe.Kind, fe.Detail)
	}
	return err.Error()
}
