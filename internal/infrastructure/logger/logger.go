package logger

import (
	"io"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
	"github.com/op/go-logging"
)

const module = "newsdesk"

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module} %{shortfile} ▶ %{level:.4s}%{color:reset} %{message}`,
)

// AppLogger is a leveled logger backed by go-logging.
type AppLogger struct {
	log *logging.Logger
}

// NewAppLogger creates a logger writing to stdout at the given level name.
func NewAppLogger(level string) usecasecontract.IAppLogger {
	return newAppLogger(os.Stdout, level)
}

func newAppLogger(w io.Writer, level string) *AppLogger {
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatter)
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)

	l := logging.MustGetLogger(module)
	l.SetBackend(leveled)
	// report the caller of AppLogger, not AppLogger itself
	l.ExtraCalldepth = 1
	return &AppLogger{log: l}
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

// Debugf logs a debug message.
func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Infof logs an info message.
func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.log.Warningf(format, args...)
}

// Warningf logs a warning message.
func (l *AppLogger) Warningf(format string, args ...interface{}) {
	l.log.Warningf(format, args...)
}

// Errorf logs an error message.
func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}
