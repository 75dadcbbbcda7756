package i2c

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/BertoldVdb/go-i2creg/closeflag"
	"golang.org/x/sys/unix"
)

const (
	i2cFlagTen  uint16 = 0x0010
	i2cFlagRead uint16 = 0x0001
	i2cRdWr     uint   = 0x0707
)

// Bus is a Linux i2c-dev adapter. Transfers on one Bus are serialized. Using a closed bus
// returns closeflag.ErrorClosed.
type Bus struct {
	mutex  sync.Mutex
	file   *os.File
	closed closeflag.CloseFlag
}

func OpenBus(busID int) (*Bus, error) {
	b := &Bus{}

	var err error
	b.file, err = os.OpenFile(fmt.Sprintf("/dev/i2c-%d", busID), syscall.O_RDWR|syscall.O_NOCTTY, 0600)
	if err != nil {
		return nil, err
	}
	b.closed.CloseFunc = b.file.Close

	return b, nil
}

func (b *Bus) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.closed.Close()
}

type msg struct {
	Address uint16
	Flags   uint16
	Len     uint16
	Buf     uintptr
}

func makeMsg(address uint16, flags uint16, buf []byte) msg {
	if address > 0x7F {
		flags |= i2cFlagTen
	}

	return msg{
		Address: address,
		Flags:   flags,
		Len:     uint16(len(buf)),
		Buf:     uintptr(unsafe.Pointer(&buf[0])),
	}
}

// buildMessages returns the i2c_msg array for one combined transfer. Empty buffers are skipped.
func buildMessages(address uint16, writeBuf []byte, readBuf []byte) []msg {
	var transfer []msg
	if len(writeBuf) > 0 {
		transfer = append(transfer, makeMsg(address, 0, writeBuf))
	}
	if len(readBuf) > 0 {
		transfer = append(transfer, makeMsg(address, i2cFlagRead, readBuf))
	}
	return transfer
}

// Transfer writes writeBuf and then fills readBuf in one transaction, using a repeated start
// between the two parts
func (b *Bus) Transfer(address uint16, writeBuf []byte, readBuf []byte) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.closed.IsClosed() {
		return closeflag.ErrorClosed
	}

	transfer := buildMessages(address, writeBuf, readBuf)
	if len(transfer) == 0 {
		// A succesful, albeit useless, transfer
		return nil
	}

	type rdWrRaw struct {
		Messages    uintptr
		NumMessages uint32
	}

	param := rdWrRaw{
		Messages:    uintptr(unsafe.Pointer(&transfer[0])),
		NumMessages: uint32(len(transfer)),
	}

	_, _, errNo := unix.Syscall(unix.SYS_IOCTL, b.file.Fd(), uintptr(i2cRdWr), uintptr(unsafe.Pointer(&param)))

	runtime.KeepAlive(transfer)
	runtime.KeepAlive(writeBuf)
	runtime.KeepAlive(readBuf)

	if errNo != 0 {
		return fmt.Errorf("I2C transfer failed: %s", errNo.Error())
	}

	return nil
}

// Write sends buf to the device in a single write message
func (b *Bus) Write(address uint16, buf []byte) error {
	return b.Transfer(address, buf, nil)
}

// WriteRead sends writeBuf followed by a repeated start and a read of readLen bytes
func (b *Bus) WriteRead(address uint16, writeBuf []byte, readLen int) ([]byte, error) {
	readBuf := make([]byte, readLen)
	err := b.Transfer(address, writeBuf, readBuf)
	if err != nil {
		return nil, err
	}
	return readBuf, nil
}
