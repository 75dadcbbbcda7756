// Package i2clog traces register transport traffic with logrus
package i2clog

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/BertoldVdb/go-i2creg/regcodec"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Transport logs every transaction of the wrapped transport. Successful transactions are logged
// at debug level, failures at warning level. Errors are returned unchanged.
type Transport struct {
	next regcodec.Transport
	log  *logrus.Entry
}

func New(next regcodec.Transport, log *logrus.Entry) *Transport {
	return &Transport{
		next: next,
		log:  log,
	}
}

func (l *Transport) entry(address uint16, writeBuf []byte, begin time.Time) *logrus.Entry {
	return l.log.WithFields(logrus.Fields{
		"txid":     uuid.New().String(),
		"address":  fmt.Sprintf("0x%02x", address),
		"write":    hex.EncodeToString(writeBuf),
		"duration": time.Since(begin),
	})
}

func (l *Transport) Write(address uint16, buf []byte) error {
	if l.log == nil {
		return l.next.Write(address, buf)
	}

	begin := time.Now()
	err := l.next.Write(address, buf)

	e := l.entry(address, buf, begin)
	if err != nil {
		e.WithError(err).Warn("I2C write failed")
	} else {
		e.Debug("I2C write")
	}

	return err
}

func (l *Transport) WriteRead(address uint16, writeBuf []byte, readLen int) ([]byte, error) {
	if l.log == nil {
		return l.next.WriteRead(address, writeBuf, readLen)
	}

	begin := time.Now()
	buf, err := l.next.WriteRead(address, writeBuf, readLen)

	e := l.entry(address, writeBuf, begin).WithField("readlen", readLen)
	if err != nil {
		e.WithError(err).Warn("I2C read failed")
	} else {
		e.WithField("read", hex.EncodeToString(buf)).Debug("I2C read")
	}

	return buf, err
}
