package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// ContextKeyTraceID is the key used to store the trace id of an
// operation in a context.Context
const ContextKeyTraceID contextKey = "traceID"

// GetTraceID returns the trace id stored in the context, or 0
// if there is none
func GetTraceID(ctx context.Context) int64 {
	if id, ok := ctx.Value(ContextKeyTraceID).(int64); ok {
		return id
	}

	return 0
}

// Fields is a set of key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by values that know how to
// describe themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a map based implementation of Fields and
// Loggable
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// Logger logs entries with a message and a set of fields
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// LogrusLoggerProperties are the properties used to create
// a logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written. It defaults to os.Stderr
	Output io.Writer
}

// LogrusLogger is an implementation of Logger using logrus
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new LogrusLogger
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return &LogrusLogger{logger: logger}
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

func (l *LogrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := logrusFields{}
	if id := GetTraceID(ctx); id != 0 {
		fields.Add("trace_id", id)
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger for LogrusLogger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

// Info implementation of Logger for LogrusLogger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

// Warn implementation of Logger for LogrusLogger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

// Error implementation of Logger for LogrusLogger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
