// Package pec adds SMBus packet error checking to a register transport. Every write gets a
// trailing CRC-8 byte and every read fetches one extra byte that is verified before the data is
// handed back. The checksum covers the address bytes as they appear on the wire, including the
// two byte header used for 10-bit addresses.
package pec

import (
	"github.com/BertoldVdb/go-i2creg/regcodec"
	"github.com/sigurn/crc8"
)

var crcTable = crc8.MakeTable(crc8.CRC8)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrPEC = Error("Packet error code mismatch")
)

// Checksum calculates the SMBus PEC over the concatenation of parts
func Checksum(parts ...[]byte) uint8 {
	crc := crc8.Init(crcTable)
	for _, p := range parts {
		crc = crc8.Update(crc, p, crcTable)
	}
	return crc8.Complete(crc, crcTable)
}

// Addresses above 0x7F are sent as 11110 A9 A8 R/W followed by A7..A0. After the repeated start
// of a read only the first header byte is repeated.
func isTenBit(address uint16) bool {
	return address > 0x7F
}

func tenBitHeader(address uint16) byte {
	return 0xF0 | byte(address>>7)&0x06
}

func writeAddr(address uint16) []byte {
	if isTenBit(address) {
		return []byte{tenBitHeader(address), byte(address)}
	}
	return []byte{byte(address << 1)}
}

func readAddr(address uint16) []byte {
	if isTenBit(address) {
		return []byte{tenBitHeader(address) | 1}
	}
	return []byte{byte(address<<1) | 1}
}

// Transport wraps another transport
type Transport struct {
	next regcodec.Transport
}

func New(next regcodec.Transport) *Transport {
	return &Transport{next: next}
}

func (p *Transport) Write(address uint16, buf []byte) error {
	frame := make([]byte, len(buf), len(buf)+1)
	copy(frame, buf)
	frame = append(frame, Checksum(writeAddr(address), buf))

	return p.next.Write(address, frame)
}

func (p *Transport) WriteRead(address uint16, writeBuf []byte, readLen int) ([]byte, error) {
	buf, err := p.next.WriteRead(address, writeBuf, readLen+1)
	if err != nil {
		return nil, err
	}
	if len(buf) < readLen+1 {
		return nil, ErrPEC
	}

	data := buf[:readLen]
	if Checksum(writeAddr(address), writeBuf, readAddr(address), data) != buf[readLen] {
		return nil, ErrPEC
	}

	return data, nil
}
