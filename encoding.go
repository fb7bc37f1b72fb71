package uuid

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"strconv"
)

// Bytes returns the UUID as a 16-byte big-endian slice, most significant
// half first. The slice does not alias the caller's value.
func (u UUID) Bytes() []byte {
	return u[:]
}

// FromBytes creates a UUID from a 16-byte big-endian slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// Halves returns the most and least significant 64 bits of the UUID.
func (u UUID) Halves() (msb, lsb uint64) {
	return binary.BigEndian.Uint64(u[0:8]), binary.BigEndian.Uint64(u[8:16])
}

// FromHalves assembles a UUID from its most and least significant 64 bits.
func FromHalves(msb, lsb uint64) UUID {
	var uuid UUID
	binary.BigEndian.PutUint64(uuid[0:8], msb)
	binary.BigEndian.PutUint64(uuid[8:16], lsb)
	return uuid
}

// BinaryString returns the 128 bits of the UUID as binary digits grouped
// 32-16-16-16-48, mirroring the hyphen positions of the canonical form.
func (u UUID) BinaryString() string {
	msb, lsb := u.Halves()
	var bits [128]byte
	pad64(bits[0:64], msb)
	pad64(bits[64:128], lsb)

	buf := make([]byte, 0, 132)
	buf = append(buf, bits[0:32]...)
	buf = append(buf, '-')
	buf = append(buf, bits[32:48]...)
	buf = append(buf, '-')
	buf = append(buf, bits[48:64]...)
	buf = append(buf, '-')
	buf = append(buf, bits[64:80]...)
	buf = append(buf, '-')
	buf = append(buf, bits[80:128]...)
	return string(buf)
}

// pad64 writes v as exactly 64 binary digits into dst.
func pad64(dst []byte, v uint64) {
	s := strconv.FormatUint(v, 2)
	n := len(dst) - len(s)
	for i := 0; i < n; i++ {
		dst[i] = '0'
	}
	copy(dst[n:], s)
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes a 32-digit hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 32 {
		return uuid, ErrInvalidFormat
	}
	if _, err := hex.Decode(uuid[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return uuid, nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}
