package uuid

import "slices"

// Compare returns an integer comparing two UUIDs by unsigned byte-wise
// comparison of their 16-byte forms, most significant byte first.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// This is the canonical order of RFC 9562 section 6.11. It differs from a
// comparison of the two halves as signed 64-bit integers, which misorders
// values whose top bit differs.
func Compare(a, b UUID) int {
	for i := 0; i < 16; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Compare returns an integer comparing u and other in canonical order.
// See the package-level Compare.
func (u UUID) Compare(other UUID) int {
	return Compare(u, other)
}

// Less reports whether u sorts before other in canonical order.
func (u UUID) Less(other UUID) bool {
	return Compare(u, other) < 0
}

// Sort sorts ids in place in canonical order.
func Sort(ids []UUID) {
	slices.SortFunc(ids, Compare)
}
