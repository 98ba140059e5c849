package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to build a
// logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the minimum level at which entries are written
	Level logrus.Level

	// Output is where entries are written. Defaults to os.Stderr
	Output io.Writer

	// Format is either "text" or "json". Defaults to "text"
	Format string
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// Logrus implementation of Logger
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger backed by logrus
func NewLogrus(props LogrusLoggerProperties) *Logrus {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return &Logrus{logger: logger}
}

func (l *Logrus) entry(ctx context.Context, loggables []Loggable) *logrus.Entry {
	fields := make(logrusFields)
	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add("trace_id", traceID)
	}

	for _, loggable := range loggables {
		if loggable != nil {
			loggable.Log(fields)
		}
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger.Debug
func (l *Logrus) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.DebugLevel) {
		l.entry(ctx, loggables).Debug(msg)
	}
}

// Info implementation of Logger.Info
func (l *Logrus) Info(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.InfoLevel) {
		l.entry(ctx, loggables).Info(msg)
	}
}

// Warn implementation of Logger.Warn
func (l *Logrus) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.WarnLevel) {
		l.entry(ctx, loggables).Warn(msg)
	}
}

// Error implementation of Logger.Error
func (l *Logrus) Error(ctx context.Context, msg string, loggables ...Loggable) {
	if l.logger.IsLevelEnabled(logrus.ErrorLevel) {
		l.entry(ctx, loggables).Error(msg)
	}
}
