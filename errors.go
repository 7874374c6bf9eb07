package multibase

import "errors"

// Declare the error values returned by encoding and decoding. All of them are
// surfaced before any partial output is produced.
var (
	// ErrUnsupportedBase is returned when the resolved base variant is listed
	// in the table but its encoding scheme is not implemented (the reserved
	// padded variants).
	ErrUnsupportedBase = errors.New("unsupported base")

	// ErrUnknownBase is returned when a code byte or a name matches no
	// registered base variant.
	ErrUnknownBase = errors.New("unknown base")

	// ErrInvalidBaseString is returned when a symbol of the decode input is
	// not part of the resolved base's alphabet.
	ErrInvalidBaseString = errors.New("invalid base string")
)
