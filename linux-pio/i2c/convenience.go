package i2c

import (
	"github.com/BertoldVdb/go-i2creg/regcodec"
)

// GetDevice returns a register accessor for the device at address
func (b *Bus) GetDevice(address uint16) *regcodec.Device {
	return regcodec.NewDevice(b, address)
}
