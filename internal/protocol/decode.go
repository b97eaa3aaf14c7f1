package protocol

import "encoding/binary"

// Decode parses a wire payload of unconstrained origin into a Message.
//
// Decoding is a single forward pass: the flag word is read first, then each
// flagged field is consumed in canonical wire order. Flag bits with no
// assigned field are ignored rather than rejected, so payloads from newer
// firmware that set additional bits still decode (any bytes those unknown
// fields occupy are left unread).
//
// Returns a LengthError when the buffer is too short for the fields its
// flags declare, and a FormatError when a gradient block is internally
// inconsistent. On error no Message is returned; there is no partial decode.
// The input buffer is never modified and is not retained by the result.
func Decode(data []byte) (*Message, error) {
	if len(data) < 2 {
		return nil, &LengthError{Field: "flags", Need: 2, Have: len(data)}
	}
	flags := binary.LittleEndian.Uint16(data[0:2])

	m := &Message{}
	off := 2
	for i := range fieldTable {
		f := &fieldTable[i]
		if flags&f.mask == 0 {
			continue
		}
		n, err := f.decode(m, data[off:])
		if err != nil {
			return nil, err
		}
		off += n
	}
	return m, nil
}
