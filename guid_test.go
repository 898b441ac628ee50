package ldap

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guidPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

func TestDecodeGUID(t *testing.T) {
	tests := []struct {
		name     string
		blob     []byte
		expected string
	}{
		{
			name: "mixed endian layout",
			blob: []byte{
				0x78, 0x56, 0x34, 0x12, // little-endian uint32
				0xBC, 0x9A, // little-endian uint16
				0xF0, 0xDE, // little-endian uint16
				0x11, 0x22, // big-endian uint16
				0x33, 0x44, // big-endian uint16
				0x55, 0x66, 0x77, 0x88, // big-endian uint32
			},
			expected: "12345678-9ABC-DEF0-1122-334455667788",
		},
		{
			name:     "all zero bytes",
			blob:     make([]byte, 16),
			expected: "00000000-0000-0000-0000-000000000000",
		},
		{
			name:     "empty input decodes as zero",
			blob:     nil,
			expected: "00000000-0000-0000-0000-000000000000",
		},
		{
			name:     "short input pads missing bytes with zero",
			blob:     []byte{0x01},
			expected: "00000001-0000-0000-0000-000000000000",
		},
		{
			name:     "empty string value from a missing attribute",
			blob:     []byte(""),
			expected: "00000000-0000-0000-0000-000000000000",
		},
		{
			name: "all ones",
			blob: []byte{
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
				0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
			},
			expected: "FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeGUID(tt.blob)
			assert.Equal(t, tt.expected, got)
			assert.Len(t, got, 36)
			assert.Regexp(t, guidPattern, got)
		})
	}
}

func TestDecodeGUIDDeterministic(t *testing.T) {
	blob := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C}
	assert.Equal(t, DecodeGUID(blob), DecodeGUID(blob))
}

func TestParseGUIDRoundTrip(t *testing.T) {
	blobs := [][]byte{
		{0x78, 0x56, 0x34, 0x12, 0xBC, 0x9A, 0xF0, 0xDE, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88},
		make([]byte, 16),
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0xFE, 0xDC, 0xBA, 0x98, 0x76, 0x54, 0x32, 0x10},
	}

	for _, blob := range blobs {
		s := DecodeGUID(blob)

		parsed, err := ParseGUID(s)
		require.NoError(t, err)
		assert.Equal(t, blob, parsed, "re-parsing %s should recover the original bytes", s)
	}
}

func TestParseGUIDInvalid(t *testing.T) {
	_, err := ParseGUID("not-a-guid")
	assert.Error(t, err)
}

func TestDecodeSID(t *testing.T) {
	tests := []struct {
		name     string
		blob     []byte
		expected string
		wantErr  bool
	}{
		{
			name: "well known account SID",
			blob: []byte{
				0x01,                               // revision
				0x02,                               // sub-authority count
				0x00, 0x00, 0x00, 0x00, 0x00, 0x05, // authority (NT)
				0x15, 0x00, 0x00, 0x00, // sub-authority 21
				0xF4, 0x01, 0x00, 0x00, // sub-authority 500
			},
			expected: "S-1-5-21-500",
		},
		{
			name:    "too short",
			blob:    []byte{0x01, 0x02, 0x00},
			wantErr: true,
		},
		{
			name: "truncated sub-authorities",
			blob: []byte{
				0x01, 0x04,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x05,
				0x15, 0x00, 0x00, 0x00,
			},
			wantErr: true,
		},
		{
			name:    "empty",
			blob:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSID(tt.blob)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, DecodeSIDSafe(tt.blob))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected, DecodeSIDSafe(tt.blob))
		})
	}
}
