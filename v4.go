package uuid

import "io"

// NewV4 generates a random UUID with 122 bits read from the generator's
// random source (RFC 9562 section 5.4).
func (g *Generator) NewV4() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, err
	}
	uuid.setVersion(VersionRandom)
	uuid.setVariant()
	return uuid, nil
}

// NewV4 generates a version 4 UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewRandom is an alias for NewV4.
func NewRandom() (UUID, error) {
	return NewV4()
}
