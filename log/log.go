// Package log proxies logrus, writing to a daily file under where.Logs() when logging is enabled.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/where"
)

var enabled bool

// Setup configures output, format and level from the logs.* keys.
// When logs.write is false every call in this package is a no-op.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}

// WithFields returns an entry carrying structured fields. It is still gated by Setup.
func WithFields(fields map[string]interface{}) *Entry {
	return &Entry{fields: logrus.Fields(fields)}
}

// Entry is a field-carrying log line builder.
type Entry struct {
	fields logrus.Fields
}

func (e *Entry) Info(msg string) {
	if enabled {
		logrus.WithFields(e.fields).Info(msg)
	}
}

func (e *Entry) Warn(msg string) {
	if enabled {
		logrus.WithFields(e.fields).Warn(msg)
	}
}

func (e *Entry) Error(msg string) {
	if enabled {
		logrus.WithFields(e.fields).Error(msg)
	}
}
