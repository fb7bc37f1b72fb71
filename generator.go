package uuid

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

// Generator produces UUIDs of every generated version. It combines a random
// source, used by versions 4, 7 and 8, with an Allocator, used by versions 1
// and 6. A Generator is safe for concurrent use.
type Generator struct {
	randReader io.Reader
	alloc      *Allocator

	// monotonic UUIDv7 state, see NewV7Monotonic
	mu         sync.Mutex
	lastMillis uint64
	counter    uint16
}

// NewGenerator creates a generator reading crypto/rand and sharing the
// process-wide allocator.
func NewGenerator() *Generator {
	return NewGeneratorWithAllocator(nil, nil)
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGeneratorWithAllocator(nil, r)
}

// NewGeneratorWithAllocator creates a generator bound to the given allocator
// and random source. A nil allocator selects the process-wide one and a nil
// reader selects crypto/rand.
func NewGeneratorWithAllocator(alloc *Allocator, r io.Reader) *Generator {
	if alloc == nil {
		alloc = defaultAllocator
	}
	if r == nil {
		r = rand.Reader
	}
	return &Generator{
		randReader: r,
		alloc:      alloc,
	}
}

// Allocator returns the allocator backing the generator's v1 and v6 UUIDs.
func (g *Generator) Allocator() *Allocator {
	return g.alloc
}

// NewVersion generates a UUID of the given version. Nil and Max return the
// special forms. Name-based versions need a name and are rejected here with
// ErrUnsupportedVersion, as is version 2 and any reserved tag; see
// NewNameBased.
func (g *Generator) NewVersion(v Version) (UUID, error) {
	switch v {
	case VersionNil:
		return Nil, nil
	case VersionMax:
		return Max, nil
	case VersionTimeBased:
		return g.NewV1(), nil
	case VersionRandom:
		return g.NewV4()
	case VersionTimeReordered:
		return g.NewV6(), nil
	case VersionTimeSorted:
		return g.NewV7()
	case VersionCustom:
		return g.NewV8()
	case VersionNameBasedMD5, VersionNameBasedSHA1:
		return Nil, fmt.Errorf("%w: %s requires a namespace and a name", ErrUnsupportedVersion, v)
	default:
		return Nil, fmt.Errorf("%w: %s cannot be generated", ErrUnsupportedVersion, v)
	}
}

// NewNameBased generates a version 3 or version 5 UUID from a namespace and a
// name. Any other version fails with ErrUnsupportedVersion.
func (g *Generator) NewNameBased(v Version, ns Namespace, name []byte) (UUID, error) {
	switch v {
	case VersionNameBasedMD5:
		return NewV3(ns, name), nil
	case VersionNameBasedSHA1:
		return NewV5(ns, name), nil
	default:
		return Nil, fmt.Errorf("%w: %s is not name-based", ErrUnsupportedVersion, v)
	}
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(generator.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// Generate generates a UUID of the given version with the default generator.
func Generate(v Version) (UUID, error) {
	return defaultGenerator.NewVersion(v)
}

// GenerateNameBased generates a version 3 or 5 UUID.
func GenerateNameBased(v Version, ns Namespace, name []byte) (UUID, error) {
	return defaultGenerator.NewNameBased(v, ns, name)
}
