package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/BertoldVdb/go-i2creg/i2ctest"
	"github.com/BertoldVdb/go-i2creg/pec"
)

func check(t *testing.T, condition bool, reason ...interface{}) {
	if !condition {
		t.Error(reason...)
		t.FailNow()
	}
}

type fakeBus struct {
	*i2ctest.Memory
	closed bool
}

func (f *fakeBus) Close() error {
	f.closed = true
	return nil
}

func newFake() (*fakeBus, opener) {
	f := &fakeBus{Memory: i2ctest.NewMemory()}
	f.AddDevice(0x50, 0x10000)
	return f, func(busID int) (bus, error) {
		if busID != 1 {
			return nil, errors.New("No such bus")
		}
		return f, nil
	}
}

func runArgs(open opener, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, open)
	return code, stdout.String(), stderr.String()
}

func TestWriteThenRead(t *testing.T) {
	f, open := newFake()

	code, out, _ := runArgs(open, "-reg", "0x0002", "-format", "UInt16BE", "-write", "0x1234")
	check(t, code == 0 && out == "", "Write failed", code, out)
	check(t, f.closed, "Bus not closed")
	check(t, bytes.Equal(f.Transactions()[0].Write, []byte{0x00, 0x02, 0x12, 0x34}), "Wrong write frame")

	code, out, _ = runArgs(open, "-reg", "2", "-format", "uint16be")
	check(t, code == 0 && out == "4660\n", "Big-endian read wrong", code, out)

	code, out, _ = runArgs(open, "-reg", "2", "-format", "UInt16LE")
	check(t, code == 0 && out == "13330\n", "Little-endian read wrong", code, out)
}

func TestSignedWrite(t *testing.T) {
	f, open := newFake()

	code, _, _ := runArgs(open, "-reg", "0x10", "-format", "Int32BE", "-write", "-1")
	check(t, code == 0, "Write failed")
	check(t, bytes.Equal(f.Peek(0x50, 0x10, 4), []byte{0xFF, 0xFF, 0xFF, 0xFF}), "-1 not stored as all ones")

	code, out, _ := runArgs(open, "-reg", "0x10", "-format", "Int8BE")
	check(t, code == 0 && out == "-1\n", "Signed read wrong", out)
}

func TestLittleEndianWriteWarns(t *testing.T) {
	_, open := newFake()

	code, _, stderr := runArgs(open, "-format", "UInt16LE", "-write", "1")
	check(t, code == 0, "Write failed")
	check(t, strings.Contains(stderr, "big-endian"), "No warning about write byte order", stderr)
}

func TestPEC(t *testing.T) {
	f, open := newFake()

	code, _, _ := runArgs(open, "-pec", "-reg", "4", "-write", "0x42")
	check(t, code == 0, "PEC write failed")
	frame := f.Transactions()[0].Write
	check(t, len(frame) == 4 && frame[3] == pec.Checksum([]byte{0xA0, 0x00, 0x04, 0x42}), "PEC missing", frame)

	code, _, stderr := runArgs(open, "-pec", "-reg", "4")
	check(t, code == 1 && strings.Contains(stderr, "Read failed"), "Bad PEC not reported", code, stderr)
}

func TestDebugLogging(t *testing.T) {
	_, open := newFake()

	code, _, stderr := runArgs(open, "-loglevel", "5", "-reg", "1")
	check(t, code == 0, "Read failed")
	check(t, strings.Contains(stderr, "I2C read"), "Transaction not logged", stderr)
}

func TestErrors(t *testing.T) {
	_, open := newFake()

	code, _, _ := runArgs(open, "-format", "Float32")
	check(t, code == 2, "Bad format accepted")

	code, _, _ = runArgs(open, "-addr", "banana")
	check(t, code == 2, "Bad address accepted")

	code, _, _ = runArgs(open, "-reg", "0x100000000")
	check(t, code == 2, "Register above 32 bit accepted")

	code, _, _ = runArgs(open, "-nope")
	check(t, code == 2, "Unknown flag accepted")

	code, _, _ = runArgs(open, "-bus", "7")
	check(t, code == 1, "Missing bus not reported")

	code, _, stderr := runArgs(open, "-addr", "0x51")
	check(t, code == 1 && strings.Contains(stderr, i2ctest.ErrNack.Error()), "Nack not reported", stderr)
}
