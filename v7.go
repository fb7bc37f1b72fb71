package uuid

import (
	"encoding/binary"
	"io"
	"time"
)

// UUIDv7 layout, RFC 9562 section 5.7:
//   - 48-bit big-endian Unix timestamp in milliseconds
//   - 4-bit version (0111)
//   - 12-bit rand_a
//   - 2-bit variant (10)
//   - 62-bit rand_b

// NewV7 generates a UUIDv7 for the current time of the generator's clock.
// rand_a and rand_b are filled from the random source.
func (g *Generator) NewV7() (UUID, error) {
	return g.NewV7WithTime(g.alloc.now())
}

// NewV7WithTime generates a UUIDv7 carrying the given instant.
func (g *Generator) NewV7WithTime(t time.Time) (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[6:]); err != nil {
		return Nil, err
	}
	putMillis(&uuid, unixMillis48(t))
	uuid.setVersion(VersionTimeSorted)
	uuid.setVariant()
	return uuid, nil
}

// NewV7Monotonic generates a UUIDv7 whose 12-bit rand_a field is a counter,
// so UUIDs from this generator sort strictly in generation order even within
// one millisecond (RFC 9562 section 6.2, method 1). The counter starts from a
// random value each new millisecond; when it overflows, the timestamp is
// advanced by one millisecond.
func (g *Generator) NewV7Monotonic() (UUID, error) {
	return g.NewV7MonotonicWithTime(g.alloc.now())
}

// NewV7MonotonicWithTime is NewV7Monotonic for a given instant. An instant
// earlier than the last one used is treated as that last one.
func (g *Generator) NewV7MonotonicWithTime(t time.Time) (UUID, error) {
	var uuid UUID

	ms := unixMillis48(t)

	g.mu.Lock()
	defer g.mu.Unlock()

	if ms <= g.lastMillis {
		ms = g.lastMillis
		g.counter++
		if g.counter > 0xfff {
			g.counter = 0
			ms++
			g.lastMillis = ms
		}
	} else {
		/*
		 * The 12-bit rand_a field and the 62-bit rand_b field SHOULD be filled with
		 * random data, such as from a cryptographically secure random number generator.
		 */
		var seed [2]byte
		if _, err := io.ReadFull(g.randReader, seed[:]); err != nil {
			return Nil, err
		}
		// Keep the top bit clear so a fresh millisecond has room to count.
		g.counter = binary.BigEndian.Uint16(seed[:]) & 0x7ff
		g.lastMillis = ms
	}

	putMillis(&uuid, ms)
	uuid[6] = byte(VersionTimeSorted)<<4 | byte(g.counter>>8)
	uuid[7] = byte(g.counter)

	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return Nil, err
	}
	uuid.setVariant()

	return uuid, nil
}

// unixMillis48 returns the low 48 bits of t's Unix time in milliseconds.
func unixMillis48(t time.Time) uint64 {
	return uint64(t.UnixMilli()) & 0xffffffffffff
}

// putMillis writes a 48-bit millisecond timestamp into bytes 0-5.
func putMillis(uuid *UUID, ms uint64) {
	uuid[0] = byte(ms >> 40)
	uuid[1] = byte(ms >> 32)
	uuid[2] = byte(ms >> 24)
	uuid[3] = byte(ms >> 16)
	uuid[4] = byte(ms >> 8)
	uuid[5] = byte(ms)
}

// v7Millis extracts the 48-bit Unix millisecond field.
func v7Millis(u UUID) uint64 {
	msb, _ := u.Halves()
	return msb >> 16
}

// New is an alias for NewV7.
func (g *Generator) New() (UUID, error) {
	return g.NewV7()
}

// New generates a new UUIDv7 using the default generator.
func New() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV7 generates a version 7 UUID using the default generator.
func NewV7() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewUnixTimeBased is an alias for NewV7.
func NewUnixTimeBased() (UUID, error) {
	return NewV7()
}
