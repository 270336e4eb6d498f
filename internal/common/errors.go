// Package common defines shared sentinel errors used across the client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/store-level errors.
	ErrNotFound = errors.New("not found")

	// Remote API errors. ErrUnauthorized means the credential itself was
	// rejected; ErrUnavailable covers transport failures and server outages
	// where the credential may still be good.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// ErrValidation marks a structured field-validation failure returned by
	// the API. The wrapping error carries the flattened field messages.
	ErrValidation = errors.New("validation error")
)
