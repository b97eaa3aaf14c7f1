package protocol

import "fmt"

// RangeError reports a field value outside its documented legal range.
// Currently raised for brightness (legal range 1-254) and for gradient
// scale/offset values that are negative, above 31.875, or not on the
// 0.125 wire increment.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %v (legal range %v to %v)",
		e.Field, e.Value, e.Min, e.Max)
}

// LengthError reports a buffer too short for the fields its flag word
// declares, or a hex string with an odd number of digits.
type LengthError struct {
	Field string
	Need  int
	Have  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("buffer too short for %s: need %d bytes, have %d",
		e.Field, e.Need, e.Have)
}

// FormatError reports a structurally inconsistent variable-length block,
// such as a gradient whose declared size disagrees with its color count,
// or a hex string containing non-hex characters.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Field, e.Reason)
}
