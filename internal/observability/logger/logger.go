// Package logger provides the structured logging facade used across
// gcpmigrate's translation core and CLI.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the structured logging interface every component logs through.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithFields(fields ...Field) Logger
	WithError(err error) Logger
}

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// ZeroLogger implements Logger using zerolog.
type ZeroLogger struct {
	logger zerolog.Logger
	fields []Field
	ctx    context.Context
}

var (
	global *ZeroLogger
	once   sync.Once
)

// Config configures the global logger.
type Config struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
}

// Initialize sets up the global logger. Safe to call multiple times; only
// the first call takes effect.
func Initialize(cfg Config) {
	once.Do(func() {
		var out io.Writer
		switch cfg.Output {
		case "", "stdout":
			out = os.Stdout
		case "stderr":
			out = os.Stderr
		default:
			f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				out = os.Stdout
			} else {
				out = f
			}
		}

		if cfg.Format == "console" {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		zerolog.SetGlobalLevel(parseLevel(cfg.Level))
		l := zerolog.New(out).With().Timestamp().Logger()

		global = &ZeroLogger{logger: l}
		log.Logger = l
	})
}

// Get returns the global logger, initializing it with defaults if needed.
func Get() Logger {
	if global == nil {
		Initialize(Config{Level: "info", Format: "json", Output: "stdout"})
	}
	return global
}

// New returns a logger tagged with a "component" field.
func New(component string) Logger {
	return Get().WithFields(String("component", component))
}

// WithFields returns a derived logger carrying the given fields.
func (l *ZeroLogger) WithFields(fields ...Field) Logger {
	return &ZeroLogger{
		logger: l.logger,
		fields: append(append([]Field{}, l.fields...), fields...),
		ctx:    l.ctx,
	}
}

// WithError returns a derived logger carrying the error as a field.
func (l *ZeroLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.WithFields(String("error", err.Error()))
}

func (l *ZeroLogger) Debug(msg string, fields ...Field) { l.emit(l.logger.Debug(), msg, fields...) }
func (l *ZeroLogger) Info(msg string, fields ...Field)  { l.emit(l.logger.Info(), msg, fields...) }
func (l *ZeroLogger) Warn(msg string, fields ...Field)  { l.emit(l.logger.Warn(), msg, fields...) }
func (l *ZeroLogger) Error(msg string, fields ...Field) { l.emit(l.logger.Error(), msg, fields...) }

func (l *ZeroLogger) emit(event *zerolog.Event, msg string, fields ...Field) {
	for _, f := range l.fields {
		event = addField(event, f)
	}
	for _, f := range fields {
		event = addField(event, f)
	}
	event.Msg(msg)
}

func addField(event *zerolog.Event, f Field) *zerolog.Event {
	switch v := f.Value.(type) {
	case string:
		return event.Str(f.Key, v)
	case int:
		return event.Int(f.Key, v)
	case bool:
		return event.Bool(f.Key, v)
	case time.Duration:
		return event.Dur(f.Key, v)
	case error:
		return event.Err(v)
	default:
		return event.Interface(f.Key, v)
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Field constructors.

func String(key, value string) Field         { return Field{Key: key, Value: value} }
func Int(key string, value int) Field        { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field      { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Printf is a compatibility shim for call sites migrating off fmt.Printf.
func Printf(format string, args ...interface{}) {
	Get().Info(fmt.Sprintf(format, args...))
}
