// Package log provides the structured logger used for this module's
// internal diagnostics: the key and share operations log at Error level
// when a stored secret scalar cannot be decoded. DefaultLogger stays silent (discard) until a caller
// opts in, so importing this module never causes unsolicited output.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log is the implementation of Logger.
type log struct {
	*zap.SugaredLogger
}

// Logger is the logging surface this module's packages depend on.
//
//nolint:interfacebloat // mirrors the host project's logging interface shape
type Logger interface {
	Debug(keyvals ...interface{})
	Info(keyvals ...interface{})
	Warn(keyvals ...interface{})
	Error(keyvals ...interface{})
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// discard is a zero-overhead Logger that drops everything.
type discard struct{}

func (discard) Debug(...interface{})          {}
func (discard) Info(...interface{})           {}
func (discard) Warn(...interface{})           {}
func (discard) Error(...interface{})          {}
func (discard) Debugw(string, ...interface{}) {}
func (discard) Infow(string, ...interface{})  {}
func (discard) Warnw(string, ...interface{})  {}
func (discard) Errorw(string, ...interface{}) {}
func (d discard) With(...interface{}) Logger  { return d }
func (d discard) Named(string) Logger         { return d }

var (
	defaultMu     sync.Mutex
	defaultLogger Logger = discard{}
)

// New returns a zap-backed logger writing to output at the given level. A
// nil output writes to os.Stderr.
func New(output zapcore.WriteSyncer, level int) Logger {
	if output == nil {
		output = zapcore.AddSync(os.Stderr)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &log{zap.New(core, zap.WithCaller(true)).Sugar()}
}

// SetDefault replaces the package-wide default logger returned by
// DefaultLogger. It is meant to be called once, early, by a long-lived
// process embedding this module; library code itself never calls it.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// DefaultLogger returns the current package-wide default logger, a silent
// discard logger unless SetDefault has been called.
func DefaultLogger() Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLogger
}
