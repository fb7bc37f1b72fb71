package uuid

// UUIDv6 is field-compatible with UUIDv1 but stores the timestamp most
// significant bits first, so byte order matches chronological order
// (RFC 9562 section 5.6).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           time_high                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           time_mid            |  ver  |       time_low        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|var|         clock_seq         |             node              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                              node                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

// NewV6 generates a reordered time-based UUID from the generator's allocator.
// It shares the clock sequence and node with NewV1.
func (g *Generator) NewV6() UUID {
	return encodeV6(g.alloc.Timestamp(), g.alloc.ClockSequenceAndNode())
}

// NewV6 generates a version 6 UUID using the default generator.
func NewV6() UUID {
	return defaultGenerator.NewV6()
}

// NewSortableTimeBased is an alias for NewV6.
func NewSortableTimeBased() UUID {
	return NewV6()
}

// encodeV6 puts the top 48 timestamp bits in front of the version nibble and
// the remaining 12 bits after it.
func encodeV6(ticks, lsb uint64) UUID {
	ticks &= timestampMask
	msb := (ticks>>12)<<16 | 0x6000 | ticks&0x0fff
	return FromHalves(msb, lsb)
}

// v6Ticks reverses encodeV6.
func v6Ticks(u UUID) uint64 {
	msb, _ := u.Halves()
	return (msb>>16)<<12 | msb&0x0fff
}
