// Package logger carries the component-tagged logging interface used by the
// display code and a zap-backed implementation of it.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is implemented by everything the app, renderers and screens log to.
// The component names the subsystem ("fb", "app", "assets", ...).
type Logger interface {
	Debugf(component string, format string, args ...interface{})
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Debugf(component, format string, args ...interface{}) {}
func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// Zap adapts a sugared zap logger to Logger. Each component gets a named
// child logger so the console output reads "app: message".
type Zap struct {
	base *zap.SugaredLogger
}

func NewZap(base *zap.SugaredLogger) *Zap {
	if base == nil {
		base = zap.NewNop().Sugar()
	}
	return &Zap{base: base}
}

func (l *Zap) Debugf(component, format string, args ...interface{}) {
	l.base.Named(component).Debugf(format, args...)
}

func (l *Zap) Infof(component, format string, args ...interface{}) {
	l.base.Named(component).Infof(format, args...)
}

func (l *Zap) Errorf(component, format string, args ...interface{}) {
	l.base.Named(component).Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *Zap) Sync() error { return l.base.Sync() }

// New creates a console logger writing to w at the given level. A nil writer
// means stdout.
func New(w io.Writer, level zapcore.LevelEnabler) *zap.SugaredLogger {
	if w == nil {
		w = os.Stdout
	}
	if level == nil {
		level = zapcore.InfoLevel
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "message",
		LevelKey:         "level",
		NameKey:          "component",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	})

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// ParseLevel converts a config string to a zap level.
func ParseLevel(s string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info", "":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}
