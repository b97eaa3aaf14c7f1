package protocol

import (
	"encoding/binary"
	"fmt"
)

// Encode serializes a message to its wire payload. The buffer length is
// fully determined by which fields are set and is computed up front; absent
// fields occupy no space. A message with no fields set encodes to the two
// zero bytes of an empty flag word.
//
// Returns a RangeError if brightness is outside 1-254, if a gradient has
// more than MaxGradientColors colors, or if a gradient scale/offset is
// outside [0, 31.875] or not on the 0.125 increment.
func Encode(m *Message) ([]byte, error) {
	size := 2
	for i := range fieldTable {
		if fieldTable[i].present(m) {
			size += fieldTable[i].size(m)
		}
	}

	buf := make([]byte, size)
	var flags uint16
	off := 2
	for i := range fieldTable {
		f := &fieldTable[i]
		if !f.present(m) {
			continue
		}
		n, err := f.encode(m, buf[off:])
		if err != nil {
			return nil, err
		}
		flags |= f.mask
		off += n
	}

	// Guards the codec itself, not caller input: the table's size and
	// encode functions must always agree.
	if off != size {
		panic(fmt.Sprintf("protocol: encoded %d bytes, computed size %d", off, size))
	}

	binary.LittleEndian.PutUint16(buf[0:2], flags)
	return buf, nil
}
