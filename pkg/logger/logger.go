package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	std     = newStd()
	logFile *os.File
)

func newStd() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// InitLogger sets the level and tees output to filename when it is not empty.
func InitLogger(filename string, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	std.SetLevel(lvl)

	if filename == "" {
		std.SetOutput(os.Stdout)
		return nil
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	Close()
	logFile = f
	std.SetOutput(io.MultiWriter(os.Stdout, logFile))
	return nil
}

// Close releases the log file and falls back to stdout.
func Close() {
	if logFile != nil {
		std.SetOutput(os.Stdout)
		logFile.Close()
		logFile = nil
	}
}

// SetOutput redirects all log output, used by tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func WithField(key string, value interface{}) *logrus.Entry {
	return std.WithField(key, value)
}

func Debug(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

func Debugf(format string, v ...interface{}) {
	Debug(format, v...)
}

func Info(format string, v ...interface{}) {
	std.Infof(format, v...)
}

func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

func Error(format string, v ...interface{}) {
	std.Errorf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	std.Warnf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}
