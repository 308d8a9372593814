package api

import (
	"errors"
	"fmt"
)

// Kind partitions request failures by what the caller can do about them.
type Kind string

const (
	// KindNetwork covers connection-level failures: DNS, refused, reset.
	// Retryable by the caller, never by this layer.
	KindNetwork Kind = "network"
	// KindTimeout means the round trip ran out of time.
	KindTimeout Kind = "timeout"
	// KindAPI is a remote-side rejection carrying the service's error type.
	KindAPI Kind = "api"
	// KindMalformed means the response body could not be parsed.
	KindMalformed Kind = "malformed"
)

// Error is the single failure shape this layer surfaces.
type Error struct {
	Kind    Kind
	ErrType string // machine-readable error name from the service, KindAPI only
	Message string
	Status  int    // HTTP status, 0 when the exchange never completed
	Raw     []byte // response body as received, for diagnostics
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindAPI && e.ErrType != "":
		return fmt.Sprintf("api error %s (status %d): %s", e.ErrType, e.Status, e.Message)
	case e.cause != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
