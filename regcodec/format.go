package regcodec

import (
	"fmt"
	"strings"
)

// NumberFormat selects how the value bytes of a register are interpreted
type NumberFormat uint8

const (
	UInt8BE NumberFormat = iota
	UInt8LE
	Int8BE
	Int8LE
	UInt16BE
	UInt16LE
	Int16BE
	Int16LE
	UInt32BE
	UInt32LE
	Int32BE
	Int32LE

	numFormats
)

var formatNames = [numFormats]string{
	"UInt8BE", "UInt8LE", "Int8BE", "Int8LE",
	"UInt16BE", "UInt16LE", "Int16BE", "Int16LE",
	"UInt32BE", "UInt32LE", "Int32BE", "Int32LE",
}

// Formats returns all supported number formats
func Formats() []NumberFormat {
	result := make([]NumberFormat, numFormats)
	for i := range result {
		result[i] = NumberFormat(i)
	}
	return result
}

func (f NumberFormat) valid() bool {
	return f < numFormats
}

// Width returns the number of value bytes (1, 2 or 4)
func (f NumberFormat) Width() int {
	assert(f.valid(), "Invalid number format")
	return 1 << (f / 4)
}

// Signed is true for the two's complement formats
func (f NumberFormat) Signed() bool {
	assert(f.valid(), "Invalid number format")
	return f&2 != 0
}

// BigEndian is true when the most significant byte is transferred first
func (f NumberFormat) BigEndian() bool {
	assert(f.valid(), "Invalid number format")
	return f&1 == 0
}

func (f NumberFormat) String() string {
	if !f.valid() {
		return fmt.Sprintf("NumberFormat(%d)", uint8(f))
	}
	return formatNames[f]
}

// ParseNumberFormat converts a name like "UInt16BE" (case insensitive) to a NumberFormat
func ParseNumberFormat(name string) (NumberFormat, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return NumberFormat(i), nil
		}
	}
	return 0, fmt.Errorf("Unknown number format: %q", name)
}

func assert(condition bool, reason string) {
	if !condition {
		panic(reason)
	}
}
