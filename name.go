package uuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
	"strings"
)

// Namespace supplies the namespace UUID that salts name-based UUIDs
// (versions 3 and 5). Every UUID is a Namespace of itself, so an application
// namespace is simply a UUID value; prefer a v4 or v7 UUID for new ones and
// do not reuse the well-known values for other semantics.
type Namespace interface {
	Namespace() UUID
}

// WellKnown enumerates the namespaces of RFC 9562 section 6.6.
type WellKnown uint8

const (
	_             WellKnown = iota
	NamespaceDNS            // fully qualified domain names
	NamespaceURL            // URLs
	NamespaceOID            // ISO OIDs
	NamespaceX500           // X.500 DNs in DER or text
)

var wellKnown = [...]struct {
	name string
	id   UUID
}{
	NamespaceDNS:  {"dns", MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
	NamespaceURL:  {"url", MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")},
	NamespaceOID:  {"oid", MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")},
	NamespaceX500: {"x500", MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")},
}

// Namespace returns the namespace UUID. An out-of-range value yields Nil.
func (w WellKnown) Namespace() UUID {
	if int(w) >= len(wellKnown) {
		return Nil
	}
	return wellKnown[w].id
}

// String returns the lower-case name of the namespace.
func (w WellKnown) String() string {
	if w == 0 || int(w) >= len(wellKnown) {
		return "unknown"
	}
	return wellKnown[w].name
}

// ParseNamespace resolves "dns", "url", "oid" or "x500" (case-insensitive) to
// the well-known namespace, and anything else through Parse.
func ParseNamespace(s string) (Namespace, error) {
	for w := NamespaceDNS; int(w) < len(wellKnown); w++ {
		if strings.EqualFold(s, wellKnown[w].name) {
			return w, nil
		}
	}
	id, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// NewV3 generates a name-based UUID from the MD5 digest of the namespace bytes
// followed by name (RFC 9562 section 5.3). Strings should be passed as their
// UTF-8 bytes.
func NewV3(ns Namespace, name []byte) UUID {
	return hashed(md5.New(), ns.Namespace(), name, VersionNameBasedMD5)
}

// NewV5 generates a name-based UUID from the first 16 bytes of the SHA-1
// digest of the namespace bytes followed by name (RFC 9562 section 5.5).
func NewV5(ns Namespace, name []byte) UUID {
	return hashed(sha1.New(), ns.Namespace(), name, VersionNameBasedSHA1)
}

// hashed digests namespace ++ name and stamps version and variant onto the
// first 16 bytes of the sum.
func hashed(h hash.Hash, ns UUID, name []byte, v Version) UUID {
	h.Write(ns[:])
	return digest(h, name, v)
}

func digest(h hash.Hash, data []byte, v Version) UUID {
	h.Write(data)
	var uuid UUID
	copy(uuid[:], h.Sum(nil))
	uuid.setVersion(v)
	uuid.setVariant()
	return uuid
}
