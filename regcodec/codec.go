// Package regcodec reads and writes registers of I2C devices that use a 16-bit big-endian
// register index, such as the larger EEPROMs and many sensor front ends.
//
// A write is sent as [regHigh, regLow, value...] with the value most significant byte first.
// A read first selects the register with [regHigh, regLow] and then fetches 1, 2 or 4 bytes that
// are interpreted according to a NumberFormat. Nothing is remembered between calls.
package regcodec

import (
	"encoding/binary"
)

// SelectLen is the size of the register prefix
const SelectLen = 2

func checkWidth(width int) {
	assert(width == 1 || width == 2 || width == 4, "Width must be 1, 2 or 4 bytes")
}

func putSelect(buf []byte, reg uint32) {
	binary.BigEndian.PutUint16(buf, uint16(reg))
}

// EncodeSelect returns the register prefix. Only the low 16 bits of reg are used.
func EncodeSelect(reg uint32) []byte {
	buf := make([]byte, SelectLen)
	putSelect(buf, reg)
	return buf
}

// EncodeWrite returns the buffer that writes value to reg. Only the low 16 bits of reg and the
// low width*8 bits of value are used.
func EncodeWrite(reg uint32, value uint32, width int) []byte {
	checkWidth(width)

	buf := make([]byte, SelectLen+width)
	putSelect(buf, reg)

	switch width {
	case 1:
		buf[SelectLen] = byte(value)
	case 2:
		binary.BigEndian.PutUint16(buf[SelectLen:], uint16(value))
	default:
		binary.BigEndian.PutUint32(buf[SelectLen:], value)
	}

	return buf
}

// Decode interprets the first f.Width() bytes of buf. The result always fits the range of the
// format, so it can be converted to the matching fixed size type without loss.
func Decode(buf []byte, f NumberFormat) int64 {
	width := f.Width()
	assert(len(buf) >= width, "Buffer shorter than format width")

	var order binary.ByteOrder = binary.LittleEndian
	if f.BigEndian() {
		order = binary.BigEndian
	}

	switch width {
	case 1:
		if f.Signed() {
			return int64(int8(buf[0]))
		}
		return int64(buf[0])
	case 2:
		v := order.Uint16(buf)
		if f.Signed() {
			return int64(int16(v))
		}
		return int64(v)
	default:
		v := order.Uint32(buf)
		if f.Signed() {
			return int64(int32(v))
		}
		return int64(v)
	}
}
