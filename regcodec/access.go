package regcodec

import (
	"io"
)

// Transport moves raw bytes over the bus. Implementations own addressing, acknowledgement and
// any locking; errors they return are passed to the caller unchanged.
type Transport interface {
	// Write sends buf to the device at address
	Write(address uint16, buf []byte) error
	// WriteRead sends writeBuf and then reads readLen bytes from the same device
	WriteRead(address uint16, writeBuf []byte, readLen int) ([]byte, error)
}

// Write stores the low width*8 bits of value in register reg, most significant byte first
func Write(t Transport, address uint16, reg uint32, value uint32, width int) error {
	return t.Write(address, EncodeWrite(reg, value, width))
}

func WriteReg8(t Transport, address uint16, reg uint32, value uint32) error {
	return Write(t, address, reg, value, 1)
}

func WriteReg16(t Transport, address uint16, reg uint32, value uint32) error {
	return Write(t, address, reg, value, 2)
}

func WriteReg32(t Transport, address uint16, reg uint32, value uint32) error {
	return Write(t, address, reg, value, 4)
}

// Read selects register reg and decodes the returned bytes according to f
func Read(t Transport, address uint16, reg uint32, f NumberFormat) (int64, error) {
	width := f.Width()

	buf, err := t.WriteRead(address, EncodeSelect(reg), width)
	if err != nil {
		return 0, err
	}
	if len(buf) < width {
		return 0, io.ErrUnexpectedEOF
	}

	return Decode(buf, f), nil
}

func ReadUint8(t Transport, address uint16, reg uint32) (uint8, error) {
	v, err := Read(t, address, reg, UInt8BE)
	return uint8(v), err
}

func ReadInt8(t Transport, address uint16, reg uint32) (int8, error) {
	v, err := Read(t, address, reg, Int8BE)
	return int8(v), err
}

// ReadUint8LE is ReadUint8 under the little-endian name; a single byte has no byte order
func ReadUint8LE(t Transport, address uint16, reg uint32) (uint8, error) {
	v, err := Read(t, address, reg, UInt8LE)
	return uint8(v), err
}

func ReadInt8LE(t Transport, address uint16, reg uint32) (int8, error) {
	v, err := Read(t, address, reg, Int8LE)
	return int8(v), err
}

func ReadUint16BE(t Transport, address uint16, reg uint32) (uint16, error) {
	v, err := Read(t, address, reg, UInt16BE)
	return uint16(v), err
}

func ReadUint16LE(t Transport, address uint16, reg uint32) (uint16, error) {
	v, err := Read(t, address, reg, UInt16LE)
	return uint16(v), err
}

func ReadInt16BE(t Transport, address uint16, reg uint32) (int16, error) {
	v, err := Read(t, address, reg, Int16BE)
	return int16(v), err
}

func ReadInt16LE(t Transport, address uint16, reg uint32) (int16, error) {
	v, err := Read(t, address, reg, Int16LE)
	return int16(v), err
}

func ReadUint32BE(t Transport, address uint16, reg uint32) (uint32, error) {
	v, err := Read(t, address, reg, UInt32BE)
	return uint32(v), err
}

func ReadUint32LE(t Transport, address uint16, reg uint32) (uint32, error) {
	v, err := Read(t, address, reg, UInt32LE)
	return uint32(v), err
}

func ReadInt32BE(t Transport, address uint16, reg uint32) (int32, error) {
	v, err := Read(t, address, reg, Int32BE)
	return int32(v), err
}

func ReadInt32LE(t Transport, address uint16, reg uint32) (int32, error) {
	v, err := Read(t, address, reg, Int32LE)
	return int32(v), err
}
