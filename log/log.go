package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger the logging interface used by the client
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Std the default logger, writes text lines to stderr
var Std Logger = New(os.Stderr, "info")

// New create the logger writing to w, the level is one of debug,info,warn,error
// unknown level falls back to info
func New(w io.Writer, level string) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
