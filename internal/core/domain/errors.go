// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Protocol errors
	ErrUnknownProtocol = errors.New("unknown protocol")

	// Lookup errors
	ErrMalformedLookup = errors.New("malformed lookup")
)
