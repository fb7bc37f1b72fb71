package uuid

// UUIDv1 layout, RFC 9562 section 5.1. The 60-bit timestamp is split with its
// least significant 32 bits first, which is why v1 UUIDs do not sort by time.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           time_low                            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           time_mid            |  ver  |       time_high       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|var|         clock_seq         |             node              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                              node                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

// NewV1 generates a time-based UUID from the generator's allocator.
func (g *Generator) NewV1() UUID {
	return encodeV1(g.alloc.Timestamp(), g.alloc.ClockSequenceAndNode())
}

// NewV1 generates a version 1 (time-based) UUID using the default generator.
func NewV1() UUID {
	return defaultGenerator.NewV1()
}

// NewTimeBased is an alias for NewV1.
func NewTimeBased() UUID {
	return NewV1()
}

// encodeV1 packs a 60-bit tick count and the clock sequence / node word.
func encodeV1(ticks, lsb uint64) UUID {
	var msb uint64
	msb |= (ticks & 0x00000000ffffffff) << 32 // time_low
	msb |= (ticks & 0x0000ffff00000000) >> 16 // time_mid
	msb |= (ticks & 0x0fff000000000000) >> 48 // time_high
	msb |= 0x0000000000001000                 // version 1
	return FromHalves(msb, lsb)
}

// v1Ticks reverses encodeV1.
func v1Ticks(u UUID) uint64 {
	msb, _ := u.Halves()
	timeLow := msb >> 32
	timeMid := (msb >> 16) & 0xffff
	timeHigh := msb & 0x0fff
	return timeHigh<<48 | timeMid<<32 | timeLow
}
