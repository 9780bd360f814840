package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure.
type Kind string

const (
	// KindRequestFailed covers network errors and non-2xx responses that do
	// not map to a more specific kind.
	KindRequestFailed Kind = "request_failed"
	// KindUnauthorized means a mutating call was rejected for a missing or
	// invalid credential token.
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound means a detail fetch named a missing identity.
	KindNotFound Kind = "not_found"
	// KindValidationFailed covers upstream input rejection, e.g. a duplicate
	// category name on create.
	KindValidationFailed Kind = "validation_failed"
)

// Error is the typed failure every gateway call returns. Message carries the
// best-effort server message.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway: %s (%s)", e.Message, e.Kind)
}

// KindOf returns the failure kind of err, or "" for non-gateway errors.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// IsUnauthorized reports whether err is a credential rejection.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// IsNotFound reports whether err is a missing-identity failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
