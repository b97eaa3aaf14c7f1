package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledColorXY_Bytes(t *testing.T) {
	tests := []struct {
		name  string
		color ScaledColorXY
		want  [3]byte
	}{
		{"zero", ScaledColorXY{X: 0, Y: 0}, [3]byte{0x00, 0x00, 0x00}},
		{"max", ScaledColorXY{X: 0xFFF, Y: 0xFFF}, [3]byte{0xFF, 0xFF, 0xFF}},
		{"mixed nibbles", ScaledColorXY{X: 0x123, Y: 0xABC}, [3]byte{0x23, 0xC1, 0xAB}},
		{"x only", ScaledColorXY{X: 0xABC, Y: 0}, [3]byte{0xBC, 0x0A, 0x00}},
		{"y only", ScaledColorXY{X: 0, Y: 0x123}, [3]byte{0x00, 0x30, 0x12}},
		{"overflow masked to 12 bits", ScaledColorXY{X: 0x1123, Y: 0x2ABC}, [3]byte{0x23, 0xC1, 0xAB}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Bytes())
		})
	}
}

func TestScaledColorXYFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, c := range []ScaledColorXY{
			{X: 0, Y: 0},
			{X: 0xFFF, Y: 0xFFF},
			{X: 0x123, Y: 0xABC},
			{X: 0x789, Y: 0xDEF},
		} {
			packed := c.Bytes()
			got, err := ScaledColorXYFromBytes(packed[:])
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	})
	t.Run("wrong length", func(t *testing.T) {
		for _, data := range [][]byte{nil, {0x01}, {0x01, 0x02}, {0x01, 0x02, 0x03, 0x04}} {
			_, err := ScaledColorXYFromBytes(data)
			var lenErr *LengthError
			require.ErrorAs(t, err, &lenErr, "input %v", data)
			assert.Equal(t, 3, lenErr.Need)
			assert.Equal(t, len(data), lenErr.Have)
		}
	})
}

func TestColorXY_Scaled(t *testing.T) {
	t.Run("clamps below zero", func(t *testing.T) {
		assert.Equal(t, ScaledColorXY{X: 0, Y: 0}, ColorXY{X: -0.5, Y: -1}.Scaled())
	})
	t.Run("clamps above axis maximum", func(t *testing.T) {
		assert.Equal(t, ScaledColorXY{X: 0xFFF, Y: 0xFFF}, ColorXY{X: 1, Y: 1}.Scaled())
	})
	t.Run("axis maximum maps to full scale", func(t *testing.T) {
		assert.Equal(t, ScaledColorXY{X: 0xFFF, Y: 0xFFF},
			ColorXY{X: ScalingMaxX, Y: ScalingMaxY}.Scaled())
	})
	t.Run("quantization error is bounded", func(t *testing.T) {
		for _, c := range []ColorXY{
			{X: 0.1, Y: 0.1},
			{X: 0.3127, Y: 0.329},
			{X: 0.7, Y: 0.8},
		} {
			back := c.Scaled().Normalized()
			assert.InDelta(t, c.X, back.X, ScalingMaxX/0xFFF)
			assert.InDelta(t, c.Y, back.Y, ScalingMaxY/0xFFF)
		}
	})
	t.Run("idempotent at the scaled level", func(t *testing.T) {
		for _, c := range []ScaledColorXY{{X: 0, Y: 0}, {X: 0xFFF, Y: 0xFFF}} {
			assert.Equal(t, c, c.Normalized().Scaled())
		}
	})
}

func TestMiredFromKelvin(t *testing.T) {
	tests := []struct {
		kelvin uint32
		want   uint16
	}{
		{2000, 500},
		{2700, 370},
		{4000, 250},
		{6500, 153}, // 1e6/6500 = 153.8, floor
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MiredFromKelvin(tt.kelvin), "%dK", tt.kelvin)
	}
}
