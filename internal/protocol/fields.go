package protocol

import "encoding/binary"

// Flag word bits. Bit numbering does not match wire order for the gradient
// group: GRADIENT_COLORS (bit 8) is written before EFFECT_SPEED (bit 7) and
// GRADIENT_PARAMS (bit 6). See fieldTable for the authoritative wire order.
const (
	FlagOnOff          uint16 = 1 << 0
	FlagBrightness     uint16 = 1 << 1
	FlagColorMired     uint16 = 1 << 2
	FlagColorXY        uint16 = 1 << 3
	FlagTransitionTime uint16 = 1 << 4
	FlagEffect         uint16 = 1 << 5
	FlagGradientParams uint16 = 1 << 6
	FlagEffectSpeed    uint16 = 1 << 7
	FlagGradientColors uint16 = 1 << 8
)

// Gradient block framing: [size][count<<4][style][00][00] then 3 bytes per
// color. The size byte covers everything after itself, so an empty gradient
// declares size 4 and the block occupies gradientHeaderLen bytes total.
const (
	gradientHeaderLen  = 5
	gradientColorLen   = 3
	gradientMinDeclLen = 4
)

// fieldCodec binds one flag bit to its wire encoding. The same table drives
// Encode and Decode so the canonical field order lives in exactly one place.
type fieldCodec struct {
	name    string
	mask    uint16
	present func(*Message) bool
	size    func(*Message) int
	encode  func(*Message, []byte) (int, error)
	decode  func(*Message, []byte) (int, error)
}

// fieldTable is the canonical wire order. Entries must not be reordered:
// the gradient group intentionally deviates from flag bit order.
var fieldTable = []fieldCodec{
	{
		name:    "on/off",
		mask:    FlagOnOff,
		present: func(m *Message) bool { return m.On != nil },
		size:    fixedSize(1),
		encode: func(m *Message, buf []byte) (int, error) {
			buf[0] = 0
			if *m.On {
				buf[0] = 1
			}
			return 1, nil
		},
		decode: fixedDecode("on/off", 1, func(m *Message, data []byte) {
			on := data[0] != 0
			m.On = &on
		}),
	},
	{
		name:    "brightness",
		mask:    FlagBrightness,
		present: func(m *Message) bool { return m.Brightness != nil },
		size:    fixedSize(1),
		encode: func(m *Message, buf []byte) (int, error) {
			if *m.Brightness < 1 || *m.Brightness > 254 {
				return 0, &RangeError{Field: "brightness", Value: float64(*m.Brightness), Min: 1, Max: 254}
			}
			buf[0] = *m.Brightness
			return 1, nil
		},
		decode: fixedDecode("brightness", 1, func(m *Message, data []byte) {
			bri := data[0]
			m.Brightness = &bri
		}),
	},
	{
		name:    "color temperature",
		mask:    FlagColorMired,
		present: func(m *Message) bool { return m.ColorTemperature != nil },
		size:    fixedSize(2),
		encode: func(m *Message, buf []byte) (int, error) {
			binary.LittleEndian.PutUint16(buf, *m.ColorTemperature)
			return 2, nil
		},
		decode: fixedDecode("color temperature", 2, func(m *Message, data []byte) {
			mired := binary.LittleEndian.Uint16(data)
			m.ColorTemperature = &mired
		}),
	},
	{
		name:    "color xy",
		mask:    FlagColorXY,
		present: func(m *Message) bool { return m.Color != nil },
		size:    fixedSize(4),
		encode: func(m *Message, buf []byte) (int, error) {
			binary.LittleEndian.PutUint16(buf[0:2], uint16(clamp01(m.Color.X)*0xFFFF))
			binary.LittleEndian.PutUint16(buf[2:4], uint16(clamp01(m.Color.Y)*0xFFFF))
			return 4, nil
		},
		decode: fixedDecode("color xy", 4, func(m *Message, data []byte) {
			m.Color = &ColorXY{
				X: float64(binary.LittleEndian.Uint16(data[0:2])) / 0xFFFF,
				Y: float64(binary.LittleEndian.Uint16(data[2:4])) / 0xFFFF,
			}
		}),
	},
	{
		name:    "transition time",
		mask:    FlagTransitionTime,
		present: func(m *Message) bool { return m.TransitionTime != nil },
		size:    fixedSize(2),
		encode: func(m *Message, buf []byte) (int, error) {
			binary.LittleEndian.PutUint16(buf, *m.TransitionTime)
			return 2, nil
		},
		decode: fixedDecode("transition time", 2, func(m *Message, data []byte) {
			tt := binary.LittleEndian.Uint16(data)
			m.TransitionTime = &tt
		}),
	},
	{
		name:    "effect",
		mask:    FlagEffect,
		present: func(m *Message) bool { return m.Effect != nil },
		size:    fixedSize(1),
		encode: func(m *Message, buf []byte) (int, error) {
			buf[0] = byte(*m.Effect)
			return 1, nil
		},
		decode: fixedDecode("effect", 1, func(m *Message, data []byte) {
			// Raw byte is preserved even outside the known effect set.
			effect := Effect(data[0])
			m.Effect = &effect
		}),
	},
	{
		name:    "gradient colors",
		mask:    FlagGradientColors,
		present: func(m *Message) bool { return m.Gradient != nil },
		size: func(m *Message) int {
			return gradientHeaderLen + gradientColorLen*len(m.Gradient.Colors)
		},
		encode: encodeGradient,
		decode: decodeGradient,
	},
	{
		name:    "effect speed",
		mask:    FlagEffectSpeed,
		present: func(m *Message) bool { return m.EffectSpeed != nil },
		size:    fixedSize(1),
		encode: func(m *Message, buf []byte) (int, error) {
			buf[0] = *m.EffectSpeed
			return 1, nil
		},
		decode: fixedDecode("effect speed", 1, func(m *Message, data []byte) {
			speed := data[0]
			m.EffectSpeed = &speed
		}),
	},
	{
		name:    "gradient params",
		mask:    FlagGradientParams,
		present: func(m *Message) bool { return m.GradientParams != nil },
		size:    fixedSize(2),
		encode: func(m *Message, buf []byte) (int, error) {
			scale, err := packGradientParam("gradient scale", m.GradientParams.Scale)
			if err != nil {
				return 0, err
			}
			offset, err := packGradientParam("gradient offset", m.GradientParams.Offset)
			if err != nil {
				return 0, err
			}
			buf[0] = scale
			buf[1] = offset
			return 2, nil
		},
		decode: fixedDecode("gradient params", 2, func(m *Message, data []byte) {
			m.GradientParams = &GradientParams{
				Scale:  float64(data[0]) / 8,
				Offset: float64(data[1]) / 8,
			}
		}),
	},
}

func fixedSize(n int) func(*Message) int {
	return func(*Message) int { return n }
}

// fixedDecode wraps a fixed-width field reader with the length check every
// fixed field needs.
func fixedDecode(name string, n int, read func(*Message, []byte)) func(*Message, []byte) (int, error) {
	return func(m *Message, data []byte) (int, error) {
		if len(data) < n {
			return 0, &LengthError{Field: name, Need: n, Have: len(data)}
		}
		read(m, data[:n])
		return n, nil
	}
}

func encodeGradient(m *Message, buf []byte) (int, error) {
	count := len(m.Gradient.Colors)
	if count > MaxGradientColors {
		return 0, &RangeError{Field: "gradient color count", Value: float64(count), Min: 0, Max: MaxGradientColors}
	}
	buf[0] = byte(gradientMinDeclLen + gradientColorLen*count)
	buf[1] = byte(count << 4)
	buf[2] = byte(m.Gradient.Style)
	buf[3] = 0
	buf[4] = 0
	off := gradientHeaderLen
	for _, c := range m.Gradient.Colors {
		packed := c.Scaled().Bytes()
		copy(buf[off:off+gradientColorLen], packed[:])
		off += gradientColorLen
	}
	return off, nil
}

func decodeGradient(m *Message, data []byte) (int, error) {
	if len(data) < 1 {
		return 0, &LengthError{Field: "gradient size", Need: 1, Have: len(data)}
	}
	size := int(data[0])
	if size < gradientMinDeclLen {
		return 0, &FormatError{Field: "gradient", Reason: "size too small"}
	}
	if 1+size > len(data) {
		return 0, &FormatError{Field: "gradient", Reason: "extends beyond end of data"}
	}
	block := data[1 : 1+size]
	count := int(block[0] >> 4)
	style := GradientStyle(block[1])
	// block[2], block[3] are reserved zero bytes.
	if gradientMinDeclLen+gradientColorLen*count > size {
		return 0, &FormatError{Field: "gradient", Reason: "not enough data"}
	}
	colors := make([]ColorXY, count)
	for i := 0; i < count; i++ {
		start := 4 + i*gradientColorLen
		scaled, err := ScaledColorXYFromBytes(block[start : start+gradientColorLen])
		if err != nil {
			return 0, err
		}
		colors[i] = scaled.Normalized()
	}
	m.Gradient = &Gradient{Style: style, Colors: colors}
	return 1 + size, nil
}

// packGradientParam converts a scale/offset value to its wire byte.
// Values must lie on the 0.125 grid; silent truncation would otherwise
// lose precision without the caller noticing.
func packGradientParam(field string, v float64) (byte, error) {
	scaled := v * 8
	if v < 0 || v > 31.875 || scaled != float64(int(scaled)) {
		return 0, &RangeError{Field: field, Value: v, Min: 0, Max: 31.875}
	}
	return byte(int(scaled)), nil
}
