package uuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// UUID represents a Universally Unique Identifier as defined by RFC 9562.
// The UUID is a 128-bit (16 byte) value stored in network byte order, so the
// most significant half occupies bytes 0-7 and the least significant half
// bytes 8-15.
type UUID [16]byte

// Version is the 4-bit tag stored in the high nibble of byte 6.
type Version byte

const (
	VersionNil           Version = 0
	VersionTimeBased     Version = 1 // UUIDv1
	VersionDCESecurity   Version = 2 // UUIDv2, recognised but never generated
	VersionNameBasedMD5  Version = 3 // UUIDv3
	VersionRandom        Version = 4 // UUIDv4
	VersionNameBasedSHA1 Version = 5 // UUIDv5
	VersionTimeReordered Version = 6 // UUIDv6
	VersionTimeSorted    Version = 7 // UUIDv7
	VersionCustom        Version = 8 // UUIDv8
	VersionMax           Version = 15
)

// String returns a short human-readable name for the version.
func (v Version) String() string {
	switch v {
	case VersionNil:
		return "nil"
	case VersionMax:
		return "max"
	case VersionTimeBased, VersionDCESecurity, VersionNameBasedMD5, VersionRandom,
		VersionNameBasedSHA1, VersionTimeReordered, VersionTimeSorted, VersionCustom:
		return "v" + strconv.Itoa(int(v))
	default:
		return "reserved(" + strconv.Itoa(int(v)) + ")"
	}
}

// IsTimeBased reports whether UUIDs of this version carry a timestamp.
func (v Version) IsTimeBased() bool {
	return v == VersionTimeBased || v == VersionTimeReordered || v == VersionTimeSorted
}

// Variant is the layout tag stored in the high bits of byte 8. The numeric
// values are the variant field read as a 3-bit quantity with the don't-care
// bits cleared.
type Variant byte

const (
	VariantNCS       Variant = 0 // 0xx
	VariantRFC9562   Variant = 2 // 10x
	VariantMicrosoft Variant = 6 // 110
	VariantFuture    Variant = 7 // 111
)

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC9562:
		return "RFC9562"
	case VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}

var (
	// Nil is the nil UUID (all 128 bits zero), RFC 9562 section 5.9
	Nil UUID

	// Max is the max UUID (all 128 bits one), RFC 9562 section 5.10
	Max = UUID{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
)

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC9562
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// setVersion overwrites the version nibble, leaving the low nibble of byte 6.
func (u *UUID) setVersion(v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
}

// setVariant forces the two variant bits to 10.
func (u *UUID) setVariant() {
	u[8] = (u[8] & 0x3f) | 0x80
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// URN returns the UUID as a uniform resource name: urn:uuid:<canonical>.
func (u UUID) URN() string {
	var buf [45]byte
	copy(buf[:], "urn:uuid:")
	encodeHex(buf[9:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its canonical string representation
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx. Hex digits may be upper or lower
// case. Any other length or hyphen placement is rejected with
// ErrInvalidFormat; use ParseLenient for URN, braced, or unhyphenated input.
func Parse(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 36 {
		return uuid, ErrInvalidFormat
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid, ErrInvalidFormat
	}
	if err := decodeHexSegment(uuid[0:4], s[0:8]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[4:6], s[9:13]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[6:8], s[14:18]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[8:10], s[19:23]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[10:16], s[24:36]); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// ParseLenient parses a UUID from any of the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func ParseLenient(s string) (UUID, error) {
	switch {
	case strings.HasPrefix(s, "urn:uuid:"):
		s = s[len("urn:uuid:"):]
	case len(s) == 38 && s[0] == '{' && s[37] == '}':
		s = s[1:37]
	}
	if len(s) == 32 {
		return DecodeFromHex(s)
	}
	return Parse(s)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// IsMax returns true if the UUID is the max UUID (all ones)
func (u UUID) IsMax() bool {
	return u == Max
}

// Namespace lets any UUID act as a namespace for NewV3 and NewV5.
func (u UUID) Namespace() UUID {
	return u
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Only the canonical form is accepted.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// Strings and textual byte slices are parsed leniently; a 16-byte slice is
// taken as the raw binary form.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		id, err := ParseLenient(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := ParseLenient(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("uuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
