package protocol

// Gradient colors scale XY against these axis maxima instead of 1.0.
// Determined experimentally by Christian Iversen; a 12-bit value of 0xFFF
// on either axis corresponds to the maximum below.
const (
	ScalingMaxX = 0.7347
	ScalingMaxY = 0.8264
)

// ColorXY is a color as CIE XY coordinates in the range 0-1.
type ColorXY struct {
	X float64
	Y float64
}

// ScaledColorXY is a color as XY coordinates scaled to the range 0-0xFFF
// against ScalingMaxX/ScalingMaxY. This representation is only used inside
// gradient blocks; the plain COLOR_XY field uses 16-bit fractions of 0xFFFF.
type ScaledColorXY struct {
	X uint16 // 12-bit
	Y uint16 // 12-bit
}

// Scaled converts a normalized color to the gradient fixed-point
// representation. Each coordinate is divided by its axis maximum, clamped to
// [0, 1], multiplied by 0xFFF and truncated. The conversion is lossy.
func (c ColorXY) Scaled() ScaledColorXY {
	return ScaledColorXY{
		X: uint16(0xFFF * clamp01(c.X/ScalingMaxX)),
		Y: uint16(0xFFF * clamp01(c.Y/ScalingMaxY)),
	}
}

// Normalized converts a gradient fixed-point color back to normalized XY.
func (s ScaledColorXY) Normalized() ColorXY {
	return ColorXY{
		X: float64(s.X) / 0xFFF * ScalingMaxX,
		Y: float64(s.Y) / 0xFFF * ScalingMaxY,
	}
}

// Bytes packs the two 12-bit coordinates into the 3-byte wire layout:
//
//	[0] x bits 0-7
//	[1] x bits 8-11 in the low nibble, y bits 0-3 in the high nibble
//	[2] y bits 4-11
//
// Coordinates wider than 12 bits are silently masked.
func (s ScaledColorXY) Bytes() [3]byte {
	return [3]byte{
		byte(s.X & 0x0FF),
		byte((s.X&0xF00)>>8 | (s.Y&0x00F)<<4),
		byte((s.Y & 0xFF0) >> 4),
	}
}

// ScaledColorXYFromBytes unpacks the 3-byte wire layout produced by Bytes.
// Returns a LengthError unless data is exactly 3 bytes.
func ScaledColorXYFromBytes(data []byte) (ScaledColorXY, error) {
	if len(data) != 3 {
		return ScaledColorXY{}, &LengthError{Field: "gradient color", Need: 3, Have: len(data)}
	}
	return ScaledColorXY{
		X: uint16(data[0]) | uint16(data[1]&0x0F)<<8,
		Y: uint16(data[1]&0xF0)>>4 | uint16(data[2])<<4,
	}, nil
}

// MiredFromKelvin converts a color temperature in Kelvin to the mired value
// carried on the wire: floor(1,000,000 / kelvin). Constructor convenience
// only; the codec does not validate mired values.
func MiredFromKelvin(kelvin uint32) uint16 {
	return uint16(1_000_000 / kelvin)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
