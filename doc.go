/*
Package guid renders and parses 128-bit GUID/UUID values stored in the
mixed-endian byte layout used by Windows and UEFI binary structures.

# Usage

The core operation takes a raw 16-byte buffer, typically sliced out of
a larger binary structure, and returns the canonical lowercase
hyphenated text form:

	import "github.com/vfsformats/guid-go"

	func main() {
		s, err := guid.FormatBytes(buffer)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(s) // e.g. "03020100-0504-0706-0809-0a0b0c0d0e0f"
	}

In the mixed-endian layout the time_low, time_mid and
time_hi_and_version fields are stored little-endian while the clock
sequence and node bytes keep their order. Buffers already in canonical
RFC 4122 order are handled by FromBytes:

	g, err := guid.FromBytes(buffer)

# Errors

All failures can be classified with errors.Is against the sentinel
values in the errors subpackage:

	import guiderr "github.com/vfsformats/guid-go/errors"

	if errors.Is(err, guiderr.InvalidArgument) {
		// nil buffer, wrong size, or malformed text
	}

# Value type

GUID is a comparable [16]byte value in canonical order. It converts
to and from github.com/google/uuid values, implements the encoding
text and binary marshaler interfaces, and exposes the RFC 4122 version
and variant fields.
*/
package guid
