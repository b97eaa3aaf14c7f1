package protocol

import (
	"fmt"
	"strings"
)

// Zigbee addressing for the Hue light-update command. The codec itself
// performs no transport; these are provided for callers that do.
const (
	ClusterID        = 0xFC03 // manufacturer-specific light cluster
	ManufacturerCode = 0x100B // Philips / Signify
)

// Effect is a named light effect code. Unrecognized codes round-trip
// unchanged so that future firmware effects are not rejected.
type Effect byte

const (
	EffectCandle     Effect = 0x01
	EffectFireplace  Effect = 0x02
	EffectPrism      Effect = 0x03
	EffectSunrise    Effect = 0x09
	EffectSparkle    Effect = 0x0A
	EffectOpal       Effect = 0x0B
	EffectGlisten    Effect = 0x0C
	EffectSunset     Effect = 0x0D
	EffectUnderwater Effect = 0x0E
	EffectCosmos     Effect = 0x0F
	EffectSunbeam    Effect = 0x10
	EffectEnchant    Effect = 0x11
)

var effectNames = map[Effect]string{
	EffectCandle:     "candle",
	EffectFireplace:  "fireplace",
	EffectPrism:      "prism",
	EffectSunrise:    "sunrise",
	EffectSparkle:    "sparkle",
	EffectOpal:       "opal",
	EffectGlisten:    "glisten",
	EffectSunset:     "sunset",
	EffectUnderwater: "underwater",
	EffectCosmos:     "cosmos",
	EffectSunbeam:    "sunbeam",
	EffectEnchant:    "enchant",
}

// String returns the effect name, or "unknown(0x..)" for codes outside the
// known set.
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(e))
}

// EffectByName looks up an effect code by its lowercase name.
func EffectByName(name string) (Effect, bool) {
	for code, n := range effectNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// EffectNames returns the known effect names in code order.
func EffectNames() []string {
	codes := []Effect{
		EffectCandle, EffectFireplace, EffectPrism, EffectSunrise,
		EffectSparkle, EffectOpal, EffectGlisten, EffectSunset,
		EffectUnderwater, EffectCosmos, EffectSunbeam, EffectEnchant,
	}
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = effectNames[c]
	}
	return names
}

// GradientStyle selects how gradient colors are laid out across the strip.
type GradientStyle byte

const (
	GradientLinear    GradientStyle = 0x00
	GradientScattered GradientStyle = 0x02
	GradientMirrored  GradientStyle = 0x04
)

func (s GradientStyle) String() string {
	switch s {
	case GradientLinear:
		return "linear"
	case GradientScattered:
		return "scattered"
	case GradientMirrored:
		return "mirrored"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(s))
	}
}

// GradientStyleByName looks up a gradient style by its lowercase name.
func GradientStyleByName(name string) (GradientStyle, bool) {
	switch name {
	case "linear":
		return GradientLinear, true
	case "scattered":
		return GradientScattered, true
	case "mirrored":
		return GradientMirrored, true
	}
	return 0, false
}

// MaxGradientColors is the most colors a gradient block can carry; the
// count is stored in a 4-bit nibble.
const MaxGradientColors = 15

// Gradient is an ordered list of colors plus a layout style.
type Gradient struct {
	Style  GradientStyle
	Colors []ColorXY // at most MaxGradientColors
}

// GradientParams control how gradient colors map onto physical light
// positions. Scale and Offset are each in [0, 31.875] on 0.125 increments;
// the wire carries value*8 as a single byte.
type GradientParams struct {
	Scale  float64
	Offset float64
}

// Message is a single light-update command. Every field is independently
// optional; nil means absent, which is distinct from a zero value. A Message
// is a plain value with no identity: construct it, encode it, discard it.
type Message struct {
	On               *bool
	Brightness       *uint8 // valid range 1-254
	ColorTemperature *uint16
	Color            *ColorXY
	TransitionTime   *uint16
	Effect           *Effect
	Gradient         *Gradient
	EffectSpeed      *uint8
	GradientParams   *GradientParams
}

// Flags returns the flag word the message would carry on the wire.
func (m *Message) Flags() uint16 {
	var flags uint16
	for i := range fieldTable {
		if fieldTable[i].present(m) {
			flags |= fieldTable[i].mask
		}
	}
	return flags
}

// String returns a debug representation listing only the set fields.
func (m *Message) String() string {
	var parts []string
	if m.On != nil {
		parts = append(parts, fmt.Sprintf("on=%v", *m.On))
	}
	if m.Brightness != nil {
		parts = append(parts, fmt.Sprintf("brightness=%d", *m.Brightness))
	}
	if m.ColorTemperature != nil {
		parts = append(parts, fmt.Sprintf("mired=%d", *m.ColorTemperature))
	}
	if m.Color != nil {
		parts = append(parts, fmt.Sprintf("xy=(%.4f,%.4f)", m.Color.X, m.Color.Y))
	}
	if m.TransitionTime != nil {
		parts = append(parts, fmt.Sprintf("transition=%d", *m.TransitionTime))
	}
	if m.Effect != nil {
		parts = append(parts, fmt.Sprintf("effect=%s", *m.Effect))
	}
	if m.Gradient != nil {
		parts = append(parts, fmt.Sprintf("gradient={style=%s, colors=%d}",
			m.Gradient.Style, len(m.Gradient.Colors)))
	}
	if m.EffectSpeed != nil {
		parts = append(parts, fmt.Sprintf("effect_speed=%d", *m.EffectSpeed))
	}
	if m.GradientParams != nil {
		parts = append(parts, fmt.Sprintf("gradient_params={scale=%g, offset=%g}",
			m.GradientParams.Scale, m.GradientParams.Offset))
	}
	return "Message{" + strings.Join(parts, ", ") + "}"
}
