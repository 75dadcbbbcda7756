package logrusconfig

import (
	"flag"
	"testing"

	"github.com/sirupsen/logrus"
)

func check(t *testing.T, condition bool, reason ...interface{}) {
	if !condition {
		t.Error(reason...)
		t.FailNow()
	}
}

func TestLevelFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := InitParam(fs, logrus.InfoLevel)
	check(t, c.Level() == logrus.InfoLevel, "Default level not used")

	check(t, fs.Parse([]string{"-loglevel", "5"}) == nil, "Parse failed")
	check(t, c.Level() == logrus.DebugLevel, "Flag not applied", c.Level())

	check(t, fs.Parse([]string{"-loglevel", "42"}) == nil, "Parse failed")
	check(t, c.Level() == logrus.TraceLevel, "Level not clamped", c.Level())

	check(t, fs.Parse([]string{"-loglevel", "-3"}) == nil, "Parse failed")
	check(t, c.Level() == logrus.PanicLevel, "Level not clamped", c.Level())
}

func TestGetLogger(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := InitParam(fs, logrus.WarnLevel)

	log := c.GetLogger("i2c")
	check(t, log.Logger.GetLevel() == logrus.WarnLevel, "Logger level wrong")
	check(t, log.Data["prefix"] == "i2c", "Prefix missing", log.Data)

	check(t, len(GetLogger(logrus.DebugLevel, "").Data) == 0, "Empty prefix should not add a field")
}
