// Package logger sets up the shared logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger so packages can log through
// logrus.WithField without passing a logger around. An invalid level falls
// back to info.
func Init(level, format string) *logrus.Logger {
	return configure(logrus.StandardLogger(), level, format, os.Stdout)
}

func configure(log *logrus.Logger, level, format string, out io.Writer) *logrus.Logger {
	log.SetOutput(out)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("invalid LOG_LEVEL, using info")
	}
	return log
}

func WithComponent(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
