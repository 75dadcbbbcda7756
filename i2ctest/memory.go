// Package i2ctest contains an in-memory I2C bus for testing code that talks to register based
// devices.
package i2ctest

import (
	"encoding/hex"
	"fmt"
	"sync"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrNack is returned when no device is present at the address
	ErrNack = Error("No acknowledge from device")
)

// Transaction is one call made on the bus
type Transaction struct {
	Address uint16
	Write   []byte
	// ReadLen is -1 for a plain write
	ReadLen int
	Read    []byte
}

func (t Transaction) String() string {
	if t.ReadLen < 0 {
		return fmt.Sprintf("0x%02x W %s", t.Address, hex.EncodeToString(t.Write))
	}
	return fmt.Sprintf("0x%02x W %s R %s", t.Address, hex.EncodeToString(t.Write), hex.EncodeToString(t.Read))
}

type device struct {
	mem     []byte
	pointer int
}

// Memory is a bus with devices that behave like a 16-bit addressed EEPROM: the first two bytes
// of every write set the register pointer (big-endian), further bytes are stored at the pointer
// and reads return bytes from the pointer. The pointer increments after every byte and wraps at
// the end of the device memory.
type Memory struct {
	mutex   sync.Mutex
	devices map[uint16]*device
	log     []Transaction

	failNext  error
	shortNext int
}

func NewMemory() *Memory {
	return &Memory{
		devices:   make(map[uint16]*device),
		shortNext: -1,
	}
}

// AddDevice attaches a device with size bytes of zeroed register space
func (m *Memory) AddDevice(address uint16, size int) {
	if size <= 0 {
		panic("Device size must be positive")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.devices[address] = &device{mem: make([]byte, size)}
}

// FailNext makes the next transaction return err without touching any device
func (m *Memory) FailNext(err error) {
	m.mutex.Lock()
	m.failNext = err
	m.mutex.Unlock()
}

// ShortNext makes the next read return at most n bytes
func (m *Memory) ShortNext(n int) {
	m.mutex.Lock()
	m.shortNext = n
	m.mutex.Unlock()
}

// Transactions returns a copy of all transactions seen so far, including failed ones
func (m *Memory) Transactions() []Transaction {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]Transaction, len(m.log))
	copy(result, m.log)
	return result
}

// Reset forgets the recorded transactions
func (m *Memory) Reset() {
	m.mutex.Lock()
	m.log = nil
	m.mutex.Unlock()
}

func (m *Memory) device(address uint16) *device {
	d, ok := m.devices[address]
	if !ok {
		panic(fmt.Sprintf("No device at address 0x%02x", address))
	}
	return d
}

// Peek returns a copy of n bytes of device memory starting at offset
func (m *Memory) Peek(address uint16, offset int, n int) []byte {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	d := m.device(address)
	result := make([]byte, n)
	for i := range result {
		result[i] = d.mem[(offset+i)%len(d.mem)]
	}
	return result
}

// Poke stores data in device memory starting at offset
func (m *Memory) Poke(address uint16, offset int, data ...byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	d := m.device(address)
	for i, b := range data {
		d.mem[(offset+i)%len(d.mem)] = b
	}
}

func (d *device) write(buf []byte) {
	if len(buf) < 2 {
		return
	}

	d.pointer = (int(buf[0])<<8 | int(buf[1])) % len(d.mem)
	for _, b := range buf[2:] {
		d.mem[d.pointer] = b
		d.pointer = (d.pointer + 1) % len(d.mem)
	}
}

func (d *device) read(n int) []byte {
	result := make([]byte, n)
	for i := range result {
		result[i] = d.mem[d.pointer]
		d.pointer = (d.pointer + 1) % len(d.mem)
	}
	return result
}

func (m *Memory) transfer(address uint16, writeBuf []byte, readLen int) ([]byte, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	tx := Transaction{
		Address: address,
		Write:   append([]byte(nil), writeBuf...),
		ReadLen: readLen,
	}
	defer func() {
		m.log = append(m.log, tx)
	}()

	if err := m.failNext; err != nil {
		m.failNext = nil
		return nil, err
	}

	d, ok := m.devices[address]
	if !ok {
		return nil, ErrNack
	}

	d.write(writeBuf)
	if readLen < 0 {
		return nil, nil
	}

	if m.shortNext >= 0 && m.shortNext < readLen {
		readLen = m.shortNext
	}
	m.shortNext = -1

	tx.Read = d.read(readLen)
	return append([]byte(nil), tx.Read...), nil
}

// Write implements the write primitive of a register transport
func (m *Memory) Write(address uint16, buf []byte) error {
	_, err := m.transfer(address, buf, -1)
	return err
}

// WriteRead implements the combined write and read primitive of a register transport
func (m *Memory) WriteRead(address uint16, writeBuf []byte, readLen int) ([]byte, error) {
	if readLen < 0 {
		panic("Negative read length")
	}
	return m.transfer(address, writeBuf, readLen)
}
