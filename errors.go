package slotpass

import "errors"

// Failure classes of the derivation pipeline. Call sites wrap these with
// context via fmt.Errorf and %w; match them with errors.Is.
var (
	// ErrInvalidInput is returned when a slot value is nil, negative, or
	// cannot be parsed as an unsigned integer.
	ErrInvalidInput = errors.New("invalid slot value")

	// ErrEncodingRange is returned when a combined value is too large for
	// the fixed 32-byte big-endian field.
	ErrEncodingRange = errors.New("combined value exceeds 32-byte range")

	// ErrHashConfiguration is returned when the digest primitive is missing
	// or its output width is not the required 32 bytes.
	ErrHashConfiguration = errors.New("hash digest misconfigured")
)
