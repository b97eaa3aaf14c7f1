package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_TruncatedFlags(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x01}} {
		_, err := Decode(data)
		var lenErr *LengthError
		require.ErrorAs(t, err, &lenErr, "input %v", data)
		assert.Equal(t, "flags", lenErr.Field)
	}
}

func TestDecode_TruncatedFields(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"on/off flagged, no byte", []byte{0x01, 0x00}},
		{"brightness flagged, no byte", []byte{0x02, 0x00}},
		{"color temperature flagged, one byte", []byte{0x04, 0x00, 0x34}},
		{"color xy flagged, three bytes", []byte{0x08, 0x00, 0xFF, 0x7F, 0xFF}},
		{"transition flagged, one byte", []byte{0x10, 0x00, 0x34}},
		{"effect flagged, no byte", []byte{0x20, 0x00}},
		{"effect speed flagged, no byte", []byte{0x80, 0x00}},
		{"gradient params flagged, one byte", []byte{0x40, 0x00, 0xCC}},
		{"gradient flagged, no size byte", []byte{0x00, 0x01}},
		{"second of two fields truncated", []byte{0x03, 0x00, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(tt.data)
			var lenErr *LengthError
			require.ErrorAs(t, err, &lenErr)
			assert.Nil(t, msg, "no partial message on truncated input")
		})
	}
}

func TestDecode_MalformedGradient(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		reason string
	}{
		{
			// declared size below the 4-byte fixed header remainder
			name:   "size too small",
			data:   []byte{0x00, 0x01, 0x03, 0x00, 0x02, 0x00, 0x00},
			reason: "size too small",
		},
		{
			// declared size runs past the end of the buffer
			name:   "declared size beyond buffer",
			data:   []byte{0x00, 0x01, 0x0A, 0x20, 0x02, 0x00, 0x00},
			reason: "extends beyond end of data",
		},
		{
			// color count needs 6 bytes but declared size leaves none
			name:   "color count exceeds declared size",
			data:   []byte{0x00, 0x01, 0x04, 0x20, 0x02, 0x00, 0x00},
			reason: "not enough data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(tt.data)
			var fmtErr *FormatError
			require.ErrorAs(t, err, &fmtErr)
			assert.Contains(t, fmtErr.Reason, tt.reason)
			assert.Nil(t, msg)
		})
	}
}

// A declared gradient size larger than its color block is tolerated: the
// extra bytes are treated as padding and skipped, keeping the cursor in
// sync with the size prefix.
func TestDecode_GradientDeclaredPadding(t *testing.T) {
	data := []byte{
		0x00, 0x01, // flags: gradient colors only
		0x09,       // size: 4 header + 3 color + 2 padding
		0x10,       // one color
		0x00,       // linear
		0x00, 0x00, // reserved
		0x23, 0xC1, 0xAB, // color
		0xAA, 0xBB, // padding inside declared size
	}
	msg, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, msg.Gradient)
	assert.Len(t, msg.Gradient.Colors, 1)
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	msg, err := Decode([]byte{0x01, 0x00, 0x01, 0xDE, 0xAD})
	require.NoError(t, err)
	require.NotNil(t, msg.On)
	assert.True(t, *msg.On)
}

// The decoded message must be an independent value: mutating the input
// buffer afterwards must not change it.
func TestDecode_DoesNotAliasInput(t *testing.T) {
	data, err := DecodeHex("40010a2002000023c1ab89f7deccdd")
	require.NoError(t, err)
	msg, err := Decode(data)
	require.NoError(t, err)

	before := msg.Gradient.Colors[0]
	for i := range data {
		data[i] = 0xFF
	}
	assert.Equal(t, before, msg.Gradient.Colors[0])
	assert.Equal(t, 25.5, msg.GradientParams.Scale)
}

func TestDecode_FieldOrderMatchesWire(t *testing.T) {
	// All three gradient-group fields present: colors (bit 8) come first on
	// the wire, then effect speed (bit 7), then params (bit 6).
	data := []byte{
		0xC0, 0x01, // flags 0x01C0
		0x04, 0x00, 0x02, 0x00, 0x00, // empty scattered gradient
		0x55,       // effect speed
		0xCC, 0xDD, // params
	}
	msg, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, msg.EffectSpeed)
	assert.Equal(t, uint8(0x55), *msg.EffectSpeed)
	require.NotNil(t, msg.Gradient)
	assert.Equal(t, GradientScattered, msg.Gradient.Style)
	require.NotNil(t, msg.GradientParams)
	assert.Equal(t, 25.5, msg.GradientParams.Scale)
	assert.Equal(t, 27.625, msg.GradientParams.Offset)

	reencoded, err := Encode(msg)
	require.NoError(t, err)
	assert.Equal(t, data, reencoded)
}
