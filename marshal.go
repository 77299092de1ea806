package guid

import (
	"github.com/pkg/errors"
	guidint "github.com/vfsformats/guid-go/internal/errors"
)

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}

	*g = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is in
// canonical byte order.
func (g GUID) MarshalBinary() ([]byte, error) {
	return g.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Exactly 16
// bytes in canonical order are required.
func (g *GUID) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return guidint.NewInvalidArgumentError(guidint.ErrUnsupportedBufferSize,
			errors.Errorf("got %d bytes, want %d", len(data), Size))
	}

	copy(g[:], data)
	return nil
}
