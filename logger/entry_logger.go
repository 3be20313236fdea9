package logger

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/google/uuid"
)

// Logger stores the needed functionality to print a log.
type Logger struct {
	sink    *Logging
	trace   string
	started time.Time
	labels  map[string]string
}

// NewLogger creates a logger with a fresh trace id.
func (l *Logging) NewLogger() *Logger {
	id, _ := uuid.NewRandom()

	return &Logger{
		sink:    l,
		started: time.Now(),
		trace:   id.String(),
		labels:  make(map[string]string),
	}
}

// Trace returns the trace stored in logger.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel allows to optionally specify key/value labels for log entry.
func (l *Logger) SetLabel(key, value string) {
	l.labels[key] = value
}

// SetLabels allows to optionally add additional labels for log entry.
func (l *Logger) SetLabels(labels map[string]string) {
	for key, value := range labels {
		l.SetLabel(key, value)
	}
}

func (l *Logger) logEntry(s logging.Severity, msg string) {
	if s >= l.sink.threshold {
		l.sink.std.Printf("[%s] %s\n", strings.ToLower(s.String()), strings.TrimRight(msg, "\n"))
	}

	if l.sink.cloud == nil {
		return
	}

	labels := make(map[string]string, len(l.labels))
	for k, v := range l.labels {
		labels[k] = v
	}

	l.sink.cloud.Log(logging.Entry{
		Payload:  msg,
		Severity: s,
		Trace:    l.trace,
		Labels:   labels,
		Resource: l.sink.resource,
	})
}

func (l *Logger) Debug(v ...interface{}) {
	l.logEntry(logging.Debug, fmt.Sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.logEntry(logging.Info, fmt.Sprint(v...))
}

func (l *Logger) Warning(v ...interface{}) {
	l.logEntry(logging.Warning, fmt.Sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.logEntry(logging.Error, fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logEntry(logging.Debug, fmt.Sprintf(format, v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.logEntry(logging.Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	l.logEntry(logging.Warning, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logEntry(logging.Error, fmt.Sprintf(format, v...))
}
