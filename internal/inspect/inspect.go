// Package inspect renders annotated byte-level breakdowns of encoded
// light-update payloads for the CLI's inspect command.
//
// Analyze walks a payload the same way the codec's decoder does and emits
// one row per wire element (the flag word, each field, each gradient color)
// with its offset, raw bytes and decoded meaning. Render turns those rows
// into aligned, styled terminal output.
package inspect

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/muurk/huewire/internal/protocol"
)

// Row is one annotated wire element.
type Row struct {
	Offset int    // byte offset of the element
	Bytes  []byte // raw bytes of the element
	Field  string // wire element name
	Value  string // decoded meaning
}

// flagNames maps each assigned flag bit to its field name, in wire order.
var flagNames = []struct {
	mask uint16
	name string
}{
	{protocol.FlagOnOff, "on/off"},
	{protocol.FlagBrightness, "brightness"},
	{protocol.FlagColorMired, "color temperature"},
	{protocol.FlagColorXY, "color xy"},
	{protocol.FlagTransitionTime, "transition time"},
	{protocol.FlagEffect, "effect"},
	{protocol.FlagGradientColors, "gradient colors"},
	{protocol.FlagEffectSpeed, "effect speed"},
	{protocol.FlagGradientParams, "gradient params"},
}

// Analyze breaks an encoded payload into annotated rows. The payload is
// validated with a full decode first, so malformed input fails with the
// codec's own error before any rows are produced.
func Analyze(data []byte) ([]Row, error) {
	if _, err := protocol.Decode(data); err != nil {
		return nil, err
	}

	flags := binary.LittleEndian.Uint16(data[0:2])
	rows := []Row{{
		Offset: 0,
		Bytes:  data[0:2],
		Field:  "flags",
		Value:  fmt.Sprintf("0x%04x (%s)", flags, flagSummary(flags)),
	}}

	off := 2
	for _, f := range flagNames {
		if flags&f.mask == 0 {
			continue
		}
		var fieldRows []Row
		var n int
		if f.mask == protocol.FlagGradientColors {
			fieldRows, n = gradientRows(data, off)
		} else {
			fieldRows, n = fixedRows(f.mask, f.name, data, off)
		}
		rows = append(rows, fieldRows...)
		off += n
	}
	return rows, nil
}

func fixedRows(mask uint16, name string, data []byte, off int) ([]Row, int) {
	var n int
	var value string
	switch mask {
	case protocol.FlagOnOff:
		n = 1
		value = "off"
		if data[off] != 0 {
			value = "on"
		}
	case protocol.FlagBrightness:
		n = 1
		value = fmt.Sprintf("%d", data[off])
	case protocol.FlagColorMired:
		n = 2
		value = fmt.Sprintf("%d mired", binary.LittleEndian.Uint16(data[off:]))
	case protocol.FlagColorXY:
		n = 4
		x := float64(binary.LittleEndian.Uint16(data[off:])) / 0xFFFF
		y := float64(binary.LittleEndian.Uint16(data[off+2:])) / 0xFFFF
		value = fmt.Sprintf("(%.4f, %.4f)", x, y)
	case protocol.FlagTransitionTime:
		n = 2
		tenths := binary.LittleEndian.Uint16(data[off:])
		value = fmt.Sprintf("%d (%.1fs)", tenths, float64(tenths)/10)
	case protocol.FlagEffect:
		n = 1
		value = fmt.Sprintf("%s (0x%02x)", protocol.Effect(data[off]), data[off])
	case protocol.FlagEffectSpeed:
		n = 1
		value = fmt.Sprintf("%d", data[off])
	case protocol.FlagGradientParams:
		n = 2
		value = fmt.Sprintf("scale=%g, offset=%g",
			float64(data[off])/8, float64(data[off+1])/8)
	}
	return []Row{{Offset: off, Bytes: data[off : off+n], Field: name, Value: value}}, n
}

func gradientRows(data []byte, off int) ([]Row, int) {
	size := int(data[off])
	count := int(data[off+1] >> 4)
	style := protocol.GradientStyle(data[off+2])

	rows := []Row{{
		Offset: off,
		Bytes:  data[off : off+5],
		Field:  "gradient header",
		Value:  fmt.Sprintf("size=%d, colors=%d, style=%s", size, count, style),
	}}
	for i := 0; i < count; i++ {
		start := off + 5 + 3*i
		scaled, _ := protocol.ScaledColorXYFromBytes(data[start : start+3])
		c := scaled.Normalized()
		rows = append(rows, Row{
			Offset: start,
			Bytes:  data[start : start+3],
			Field:  fmt.Sprintf("gradient color %d", i+1),
			Value:  fmt.Sprintf("(%.4f, %.4f)", c.X, c.Y),
		})
	}
	return rows, 1 + size
}

func flagSummary(flags uint16) string {
	var names []string
	for _, f := range flagNames {
		if flags&f.mask != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "no fields"
	}
	return strings.Join(names, ", ")
}

// Render formats rows as an aligned table with styled columns.
func Render(data []byte, rows []Row) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d bytes: %s", len(data), protocol.EncodeHex(data))))
	b.WriteString("\n\n")

	fieldWidth := 0
	for _, r := range rows {
		if len(r.Field) > fieldWidth {
			fieldWidth = len(r.Field)
		}
	}

	for _, r := range rows {
		end := r.Offset + len(r.Bytes) - 1
		b.WriteString(offsetStyle.Render(fmt.Sprintf("[%02d-%02d]", r.Offset, end)))
		b.WriteString("  ")
		b.WriteString(hexStyle.Render(fmt.Sprintf("%-12s", protocol.EncodeHex(r.Bytes))))
		b.WriteString("  ")
		b.WriteString(fieldStyle.Render(fmt.Sprintf("%-*s", fieldWidth, r.Field)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(r.Value))
		b.WriteString("\n")
	}
	return b.String()
}
