package logs

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"example.com/wordgrade/pkg/config"
)

// Logger writes JSON lines with a timestamp and event fields. Nothing is
// ever written to stdout.
type Logger struct {
	log     *logrus.Logger
	f       *os.File
	enabled bool
}

// New returns a logger for cfg. When logging is disabled, or the log file
// cannot be opened, it returns a disabled logger.
func New(cfg *config.Config) *Logger {
	if cfg == nil || !cfg.LogEnabled {
		return Disabled()
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return Disabled()
	}
	l := newLogrus(f, cfg.LogLevel)
	return &Logger{log: l, f: f, enabled: true}
}

// NewWriter returns an enabled logger writing to w. The caller owns w.
func NewWriter(w io.Writer, level logrus.Level) *Logger {
	return &Logger{log: newLogrus(w, level), enabled: true}
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger {
	return &Logger{log: newLogrus(io.Discard, logrus.PanicLevel)}
}

func newLogrus(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{logrus.FieldKeyMsg: "event"},
	})
	return l
}

// Enabled reports whether events are recorded.
func (l *Logger) Enabled() bool { return l.enabled }

// Close closes the underlying file if there is one.
func (l *Logger) Close() {
	if l.f != nil {
		_ = l.f.Close()
	}
}

// Event writes an info-level JSON line with the event name and fields.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.enabled {
		return
	}
	l.log.WithFields(logrus.Fields(fields)).Info(event)
}

// Debug is Event at debug level.
func (l *Logger) Debug(event string, fields map[string]any) {
	if !l.enabled {
		return
	}
	l.log.WithFields(logrus.Fields(fields)).Debug(event)
}

// Error records err under the given event name.
func (l *Logger) Error(event string, err error) {
	if !l.enabled {
		return
	}
	l.log.WithError(err).Error(event)
}
