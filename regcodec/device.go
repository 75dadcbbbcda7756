package regcodec

// DefaultAddress is the bus address used when the caller has no better idea (a 24Cxx EEPROM)
const DefaultAddress uint16 = 0x50

// Device binds a transport to one bus address
type Device struct {
	t       Transport
	address uint16
}

func NewDevice(t Transport, address uint16) *Device {
	return &Device{
		t:       t,
		address: address,
	}
}

func (d *Device) Address() uint16 {
	return d.address
}

func (d *Device) Write(reg uint32, value uint32, width int) error {
	return Write(d.t, d.address, reg, value, width)
}

func (d *Device) WriteReg8(reg uint32, value uint32) error {
	return WriteReg8(d.t, d.address, reg, value)
}

func (d *Device) WriteReg16(reg uint32, value uint32) error {
	return WriteReg16(d.t, d.address, reg, value)
}

func (d *Device) WriteReg32(reg uint32, value uint32) error {
	return WriteReg32(d.t, d.address, reg, value)
}

func (d *Device) Read(reg uint32, f NumberFormat) (int64, error) {
	return Read(d.t, d.address, reg, f)
}

func (d *Device) ReadUint8(reg uint32) (uint8, error) {
	return ReadUint8(d.t, d.address, reg)
}

func (d *Device) ReadInt8(reg uint32) (int8, error) {
	return ReadInt8(d.t, d.address, reg)
}

func (d *Device) ReadUint8LE(reg uint32) (uint8, error) {
	return ReadUint8LE(d.t, d.address, reg)
}

func (d *Device) ReadInt8LE(reg uint32) (int8, error) {
	return ReadInt8LE(d.t, d.address, reg)
}

func (d *Device) ReadUint16BE(reg uint32) (uint16, error) {
	return ReadUint16BE(d.t, d.address, reg)
}

func (d *Device) ReadUint16LE(reg uint32) (uint16, error) {
	return ReadUint16LE(d.t, d.address, reg)
}

func (d *Device) ReadInt16BE(reg uint32) (int16, error) {
	return ReadInt16BE(d.t, d.address, reg)
}

func (d *Device) ReadInt16LE(reg uint32) (int16, error) {
	return ReadInt16LE(d.t, d.address, reg)
}

func (d *Device) ReadUint32BE(reg uint32) (uint32, error) {
	return ReadUint32BE(d.t, d.address, reg)
}

func (d *Device) ReadUint32LE(reg uint32) (uint32, error) {
	return ReadUint32LE(d.t, d.address, reg)
}

func (d *Device) ReadInt32BE(reg uint32) (int32, error) {
	return ReadInt32BE(d.t, d.address, reg)
}

func (d *Device) ReadInt32LE(reg uint32) (int32, error) {
	return ReadInt32LE(d.t, d.address, reg)
}
