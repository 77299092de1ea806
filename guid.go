package guid

import (
	"crypto/rand"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	guidint "github.com/vfsformats/guid-go/internal/errors"
	"github.com/vfsformats/guid-go/internal/layout"
)

// Size is the number of bytes in a binary GUID.
const Size = layout.Size

// GUID is a 128-bit identifier held in canonical (RFC 4122) byte
// order. The zero value is the nil GUID.
type GUID [Size]byte

// Nil is the all-zero GUID.
var Nil GUID

// FormatBytes validates buffer as a 16-byte GUID in the mixed-endian
// layout and renders it in the canonical lowercase hyphenated form.
//
// The time_low, time_mid and time_hi_and_version fields are decoded
// little-endian; the clock sequence and node bytes are rendered in the
// order stored. The returned string is exactly 36 characters and is a
// fresh allocation independent of buffer.
func FormatBytes(buffer []byte) (string, error) {
	g, err := FromMixedEndian(buffer)
	if err != nil {
		return "", err
	}

	return g.String(), nil
}

// FromMixedEndian interprets buffer as a GUID in the mixed-endian
// layout used by Windows and UEFI on-disk structures.
func FromMixedEndian(buffer []byte) (GUID, error) {
	if err := checkBuffer(buffer); err != nil {
		return Nil, err
	}

	return GUID(layout.Transpose(buffer)), nil
}

// FromBytes interprets buffer as a GUID already in canonical RFC 4122
// byte order.
func FromBytes(buffer []byte) (GUID, error) {
	if err := checkBuffer(buffer); err != nil {
		return Nil, err
	}

	var g GUID
	copy(g[:], buffer)
	return g, nil
}

// buffer must be non-nil and exactly Size bytes. Checked in that
// order so a nil buffer is always reported as missing, not as a size
// mismatch.
func checkBuffer(buffer []byte) error {
	if buffer == nil {
		return guidint.NewInvalidArgumentError(guidint.ErrMissingBuffer, nil)
	}

	if len(buffer) != Size {
		return guidint.NewInvalidArgumentError(guidint.ErrUnsupportedBufferSize,
			errors.Errorf("got %d bytes, want %d", len(buffer), Size))
	}

	return nil
}

// NewRandom returns a random (version 4, RFC 4122 variant) GUID read
// from crypto/rand.
func NewRandom() (GUID, error) {
	var g GUID
	if _, err := io.ReadFull(rand.Reader, g[:]); err != nil {
		return Nil, guidint.WrapErr(err, "unable to read random bytes")
	}

	g[6] = (g[6] & 0x0f) | 0x40
	g[8] = (g[8] & 0x3f) | 0x80
	return g, nil
}

// Parse decodes a GUID from its canonical 36-character form, the
// braced registry form ("{...}"), or the "urn:uuid:" form. Hex digits
// of either case are accepted.
func Parse(s string) (GUID, error) {
	switch len(s) {
	case layout.Length:

	case layout.Length + 9:
		if !strings.EqualFold(s[:9], "urn:uuid:") {
			return Nil, guidint.NewInvalidArgumentError(guidint.ErrInvalidTextFormat,
				errors.Errorf("invalid prefix %q", s[:9]))
		}
		s = s[9:]

	case layout.Length + 2:
		if s[0] != '{' || s[layout.Length+1] != '}' {
			return Nil, guidint.NewInvalidArgumentError(guidint.ErrInvalidTextFormat, nil)
		}
		s = s[1 : layout.Length+1]

	default:
		return Nil, guidint.NewInvalidArgumentError(guidint.ErrInvalidTextFormat,
			errors.Errorf("invalid length %d", len(s)))
	}

	b, ok := layout.DecodeCanonical(s)
	if !ok {
		return Nil, guidint.NewInvalidArgumentError(guidint.ErrInvalidTextFormat, nil)
	}

	return GUID(b), nil
}

// String renders g in the canonical lowercase hyphenated 8-4-4-4-12
// form.
func (g GUID) String() string {
	return layout.EncodeCanonical(g)
}

// BracedString renders g in the uppercase braced form used by the
// Windows registry.
func (g GUID) BracedString() string {
	return "{" + strings.ToUpper(g.String()) + "}"
}

// URN renders g in the RFC 2141 urn:uuid form.
func (g GUID) URN() string {
	return "urn:uuid:" + g.String()
}

// Bytes returns a copy of g in canonical byte order.
func (g GUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, g[:])
	return b
}

// MixedEndianBytes returns g transposed into the mixed-endian on-disk
// layout.
func (g GUID) MixedEndianBytes() [Size]byte {
	return layout.Transpose(g[:])
}

// IsNil reports whether g is the all-zero GUID.
func (g GUID) IsNil() bool {
	return g == Nil
}

// Version returns the version number held in the
// time_hi_and_version field.
func (g GUID) Version() int {
	return int(g[6] >> 4)
}

// Variant identifies the layout family encoded in the high bits of the
// clock sequence.
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	}
	return "Invalid"
}

// Variant returns the variant encoded in g.
func (g GUID) Variant() Variant {
	switch {
	case (g[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (g[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	case (g[8] & 0xe0) == 0xe0:
		return VariantFuture
	default:
		return VariantNCS
	}
}

// FromUUID converts a github.com/google/uuid value, which shares the
// canonical byte order.
func FromUUID(u uuid.UUID) GUID {
	return GUID(u)
}

// UUID converts g to a github.com/google/uuid value.
func (g GUID) UUID() uuid.UUID {
	return uuid.UUID(g)
}
