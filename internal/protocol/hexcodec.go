package protocol

import (
	"encoding/hex"
	"errors"
)

// Hex payload helpers. Encoded messages are usually exchanged and stored as
// lowercase hex strings (two digits per byte, no separators), so the codec
// carries its own conversion mapped onto the package's error taxonomy.

// EncodeHex renders data as a lowercase hex string.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex parses a hex string produced by EncodeHex (uppercase digits are
// accepted). An odd-length string fails with a LengthError; any non-hex
// character fails with a FormatError.
func DecodeHex(s string) ([]byte, error) {
	out, err := hex.DecodeString(s)
	if err != nil {
		if errors.Is(err, hex.ErrLength) {
			return nil, &LengthError{Field: "hex string", Need: len(s) + 1, Have: len(s)}
		}
		return nil, &FormatError{Field: "hex string", Reason: err.Error()}
	}
	return out, nil
}
