package uuid

import (
	"crypto/md5"
	"crypto/sha1"
)

// The functions in this file hash a name without any namespace. They exist
// only to interoperate with systems that derived identifiers that way, such
// as Java's UUID.nameUUIDFromBytes. The results carry a version 3 or 5 tag
// but do NOT conform to RFC 9562: two unrelated applications hashing the same
// name get the same UUID. Use NewV3 or NewV5 for new identifiers.

// NewV3WithoutNamespace returns the MD5 digest of name stamped as version 3.
//
// WARNING: not RFC 9562 compliant; see the note above.
func NewV3WithoutNamespace(name []byte) UUID {
	return digest(md5.New(), name, VersionNameBasedMD5)
}

// NewV5WithoutNamespace returns the truncated SHA-1 digest of name stamped as
// version 5.
//
// WARNING: not RFC 9562 compliant; see the note above.
func NewV5WithoutNamespace(name []byte) UUID {
	return digest(sha1.New(), name, VersionNameBasedSHA1)
}
