package logrusconfig

import (
	"flag"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
)

// Config holds the -loglevel flag of one flag set
type Config struct {
	level *int
}

// InitParam registers -loglevel on fs. Tools that use the global flag set can pass flag.CommandLine.
func InitParam(fs *flag.FlagSet, defaultLevel logrus.Level) *Config {
	return &Config{
		level: fs.Int("loglevel", int(defaultLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information"),
	}
}

// Level returns the configured level, clamped to the valid range
func (c *Config) Level() logrus.Level {
	level := *c.level
	if level < int(logrus.PanicLevel) {
		level = int(logrus.PanicLevel)
	}
	if level > int(logrus.TraceLevel) {
		level = int(logrus.TraceLevel)
	}
	return logrus.Level(level)
}

// GetLogger returns a logger using the configured level. prefix is shown in front of every line.
func (c *Config) GetLogger(prefix string) *logrus.Entry {
	return GetLogger(c.Level(), prefix)
}

func GetLogger(level logrus.Level, prefix string) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	logger.SetLevel(level)

	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 20
	customFormatter.SpacePadding = 50
	logger.SetFormatter(customFormatter)

	entry := logrus.NewEntry(logger)
	if prefix != "" {
		entry = entry.WithField("prefix", prefix)
	}
	return entry
}
