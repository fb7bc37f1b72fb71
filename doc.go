// Package uuid generates, parses, inspects and orders Universally Unique
// Identifiers as defined by RFC 9562, covering every standard version.
//
//   - Version 1: Gregorian timestamp, clock sequence and node
//   - Version 3: MD5 over namespace and name
//   - Version 4: 122 random bits
//   - Version 5: SHA-1 over namespace and name
//   - Version 6: version 1 fields reordered so bytes sort by time
//   - Version 7: Unix millisecond timestamp plus random bits
//   - Version 8: application-defined payload, only version and variant set
//
// Nil and Max are provided as package variables.
//
// Basic Usage:
//
//	// Generate a new UUIDv7
//	id, err := uuid.NewV7()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Name-based UUIDs are deterministic
//	id = uuid.NewV5(uuid.NamespaceURL, []byte("https://example.com"))
//
//	// Parse a UUID in canonical form
//	id, err = uuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Recover the timestamp of a v1, v6 or v7 UUID
//	t, err := uuid.RealTimestamp(id)
//
// Ordering:
//
// Compare orders UUIDs by unsigned bytes, most significant first, which is the
// order RFC 9562 defines and the order in which v6 and v7 UUIDs sort by time.
// Sort and UUID.Less use the same order.
//
// Thread Safety:
//
// All operations are thread-safe. Version 1 and 6 UUIDs draw their timestamps
// from an Allocator whose counter is advanced with compare-and-swap, so
// concurrent callers never share a tick. The package-level functions and every
// Generator built without an explicit Allocator share one process-wide
// allocator.
//
// Uniqueness across processes is best effort, per RFC 4122 section 4.1.6: two
// processes on the same host share a node and may share a clock.
package uuid
