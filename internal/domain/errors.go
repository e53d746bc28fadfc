package domain

import "errors"

var (
	// ErrValidation signals a malformed request (pagination bounds, unknown
	// logical operator). Rejected before any predicate is built.
	ErrValidation = errors.New("validation failed")
	// ErrStorageUnavailable signals that the document store is unreachable
	// or timed out. Never converted into a zero-result relaxation.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUpstreamUnavailable signals that the officer admin API could not be
	// reached.
	ErrUpstreamUnavailable = errors.New("officer API unavailable")
	// ErrUpstreamRejected signals that the officer admin API answered but
	// refused the operation.
	ErrUpstreamRejected = errors.New("officer API rejected request")
)
