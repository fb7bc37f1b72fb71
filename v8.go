package uuid

// NewV8From returns src with only the version nibble set to 8 and the variant
// bits set to 10. All other 122 bits, including any application-defined
// payload, are left untouched (RFC 9562 section 5.8).
func NewV8From(src UUID) UUID {
	src.setVersion(VersionCustom)
	src.setVariant()
	return src
}

// NewV8 generates a version 8 UUID whose payload is a fresh random UUID.
func (g *Generator) NewV8() (UUID, error) {
	src, err := g.NewV4()
	if err != nil {
		return Nil, err
	}
	return NewV8From(src), nil
}

// NewV8 generates a version 8 UUID using the default generator.
func NewV8() (UUID, error) {
	return defaultGenerator.NewV8()
}

// NewCustom is an alias for NewV8From.
func NewCustom(src UUID) UUID {
	return NewV8From(src)
}
