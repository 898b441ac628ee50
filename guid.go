package ldap

import (
	"encoding/binary"
	"fmt"

	"github.com/bwmarrin/go-objectsid"
	"github.com/google/uuid"
)

// guidLength is the fixed size of a binary objectGUID value.
const guidLength = 16

// DecodeGUID converts the binary objectGUID layout used by directory
// servers into its canonical string form.
//
// The layout is mixed-endian: a 4-byte little-endian group, two 2-byte
// little-endian groups, then two 2-byte big-endian groups and a 4-byte
// big-endian group, rendered as 8-4-4-4-12 uppercase hex digits.
//
// The decoder is lenient: input shorter than 16 bytes decodes with the
// missing bytes as zero, so callers may pass an empty value for an absent
// attribute and still get a well-formed 36-character string back.
func DecodeGUID(blob []byte) string {
	var b [guidLength]byte
	copy(b[:], blob)

	a := binary.LittleEndian.Uint32(b[0:4])
	b1 := binary.LittleEndian.Uint16(b[4:6])
	b2 := binary.LittleEndian.Uint16(b[6:8])
	c1 := binary.BigEndian.Uint16(b[8:10])
	c2 := binary.BigEndian.Uint16(b[10:12])
	d := binary.BigEndian.Uint32(b[12:16])

	return fmt.Sprintf("%08X-%04X-%04X-%04X-%04X%08X", a, b1, b2, c1, c2, d)
}

// ParseGUID converts a GUID string back into the 16-byte directory layout.
// It is the inverse of DecodeGUID: the first three groups are byte-swapped
// from the RFC 4122 ordering that uuid.Parse produces.
func ParseGUID(s string) ([]byte, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse GUID %q: %w", s, err)
	}

	b := make([]byte, guidLength)
	copy(b, u[:])
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]

	return b, nil
}

// DecodeSID converts a binary objectSid value into its S-1-5-21-... string
// representation.
func DecodeSID(blob []byte) (string, error) {
	// Minimum SID length is 8 bytes: revision, sub-authority count, authority.
	if len(blob) < 8 {
		return "", fmt.Errorf("invalid SID: %d bytes is too short", len(blob))
	}

	if want := 8 + int(blob[1])*4; len(blob) < want {
		return "", fmt.Errorf("invalid SID: %d bytes for %d sub-authorities", len(blob), blob[1])
	}

	return objectsid.Decode(blob).String(), nil
}

// DecodeSIDSafe converts a binary objectSid value to a string, returning
// the empty string when the value is malformed.
func DecodeSIDSafe(blob []byte) string {
	s, err := DecodeSID(blob)
	if err != nil {
		return ""
	}
	return s
}
