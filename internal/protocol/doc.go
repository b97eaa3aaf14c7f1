// Package protocol implements the Philips Hue manufacturer-specific Zigbee
// light-update message format.
//
// Hue lights accept a compact binary "update" command on the manufacturer
// cluster 0xFC03 that bundles up to nine optional attributes (power,
// brightness, color temperature, XY color, transition time, effect, effect
// speed, gradient colors and gradient parameters) into a single payload.
// Only attributes that are actually present occupy wire space, so the payload
// length varies with the leading flag word.
//
// # Wire Format
//
// All multi-byte integers are little-endian:
//
//	[0-1]   flags          16-bit bitmask, bit i set means field i present
//	[2+]    fields         present fields only, in a fixed order
//
// Field order and per-field encodings:
//
//	bit 0   ON_OFF          1 byte, 0 or 1
//	bit 1   BRIGHTNESS      1 byte, valid range 1-254
//	bit 2   COLOR_MIRED     2 bytes, uint16 mired
//	bit 3   COLOR_XY        4 bytes, two uint16 fractions of 0xFFFF (x, y)
//	bit 4   TRANSITION_TIME 2 bytes, uint16 tenths of a second
//	bit 5   EFFECT          1 byte, effect code
//	bit 8   GRADIENT_COLORS [size][count<<4][style][00][00] + 3 bytes/color
//	bit 7   EFFECT_SPEED    1 byte
//	bit 6   GRADIENT_PARAMS 2 bytes, scale*8 and offset*8
//
// Note the last three entries: gradient colors (bit 8) are written to the
// wire before effect speed (bit 7) and gradient params (bit 6). The flag bit
// numbering does not match the wire order for that group, so the field order
// above must be preserved exactly rather than iterating by bit index.
//
// Gradient colors use a separate 12-bit fixed-point XY representation scaled
// against empirically determined axis maxima (X=0.7347, Y=0.8264) rather than
// the 16-bit fractions used by the plain COLOR_XY field. See ScaledColorXY.
//
// # Usage Example - Encoding
//
//	on := true
//	bri := uint8(128)
//	payload, err := protocol.Encode(&protocol.Message{
//	    On:         &on,
//	    Brightness: &bri,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(protocol.EncodeHex(payload))
//
// # Usage Example - Decoding
//
//	payload, err := protocol.DecodeHex("40010400020000ccdd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	msg, err := protocol.Decode(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(msg)
//
// # Error Handling
//
// The package distinguishes between:
//   - RangeError: a value outside its documented legal range
//   - LengthError: a buffer too short for the fields its flags declare
//   - FormatError: an internally inconsistent gradient block or hex string
//
// All three support errors.As. Any error means the whole message must be
// rejected; there is no partial or best-effort decode.
//
// # Thread Safety
//
// All encoding and decoding functions are stateless and safe for concurrent
// use. Decode never mutates its input, and every call returns an independent
// Message that shares no storage with the input buffer.
package protocol
