package uuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string is not in the
	// canonical 8-4-4-4-12 hyphenated hex form
	ErrInvalidFormat = errors.New("uuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuid: invalid UUID length (expected 16 bytes)")

	// ErrUnsupportedVersion indicates that the operation is not defined for
	// the UUID's version, e.g. timestamp extraction from a random UUID
	ErrUnsupportedVersion = errors.New("uuid: unsupported UUID version")
)
