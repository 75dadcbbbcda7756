// Command i2creg reads or writes a single register of a device with 16-bit register addressing.
//
//	i2creg -bus 1 -addr 0x50 -reg 0x0002 -format UInt16BE
//	i2creg -bus 1 -addr 0x50 -reg 0x0002 -format UInt16BE -write 0x1234
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BertoldVdb/go-i2creg/i2clog"
	"github.com/BertoldVdb/go-i2creg/linux-pio/i2c"
	"github.com/BertoldVdb/go-i2creg/logrusconfig"
	"github.com/BertoldVdb/go-i2creg/pec"
	"github.com/BertoldVdb/go-i2creg/regcodec"
	"github.com/sirupsen/logrus"
)

type bus interface {
	regcodec.Transport
	io.Closer
}

type opener func(busID int) (bus, error)

func openLinux(busID int) (bus, error) {
	b, err := i2c.OpenBus(busID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, openLinux))
}

func run(args []string, stdout io.Writer, stderr io.Writer, open opener) int {
	fs := flag.NewFlagSet("i2creg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	busID := fs.Int("bus", 1, "I2C bus number (/dev/i2c-N)")
	addrStr := fs.String("addr", fmt.Sprintf("0x%02x", regcodec.DefaultAddress), "Device address")
	regStr := fs.String("reg", "0", "Register index (16 bit)")
	formatStr := fs.String("format", regcodec.UInt8BE.String(), "Number format, e.g. UInt8BE, Int16LE, UInt32BE")
	writeStr := fs.String("write", "", "Value to write instead of reading")
	usePEC := fs.Bool("pec", false, "Use SMBus packet error checking")
	logConfig := logrusconfig.InitParam(fs, logrus.InfoLevel)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logConfig.GetLogger("i2creg")
	log.Logger.SetOutput(stderr)

	address, err := strconv.ParseUint(*addrStr, 0, 16)
	if err != nil {
		log.WithError(err).Error("Invalid address")
		return 2
	}
	reg, err := strconv.ParseUint(*regStr, 0, 32)
	if err != nil {
		log.WithError(err).Error("Invalid register")
		return 2
	}
	format, err := regcodec.ParseNumberFormat(*formatStr)
	if err != nil {
		log.WithError(err).Error("Invalid format")
		return 2
	}

	b, err := open(*busID)
	if err != nil {
		log.WithError(err).WithField("bus", *busID).Error("Failed to open bus")
		return 1
	}
	defer b.Close()

	var t regcodec.Transport = b
	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		t = i2clog.New(t, log)
	}
	if *usePEC {
		t = pec.New(t)
	}

	dev := regcodec.NewDevice(t, uint16(address))

	if *writeStr != "" {
		value, err := strconv.ParseInt(*writeStr, 0, 64)
		if err != nil {
			log.WithError(err).Error("Invalid value")
			return 2
		}
		if !format.BigEndian() {
			log.Warn("Writes are always big-endian")
		}

		err = dev.Write(uint32(reg), uint32(value), format.Width())
		if err != nil {
			log.WithError(err).Error("Write failed")
			return 1
		}
		return 0
	}

	value, err := dev.Read(uint32(reg), format)
	if err != nil {
		log.WithError(err).Error("Read failed")
		return 1
	}

	fmt.Fprintln(stdout, value)
	return 0
}
