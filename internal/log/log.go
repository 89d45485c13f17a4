// Package log provides structured diagnostics for pptxswap.
//
// Output is JSON-encoded zap records on stderr so it never interleaves with
// the progress UI or report tables on stdout. The default logger is a no-op;
// --verbose swaps in a real one.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger for CLI surfaces, where convenience
// matters more than encode performance.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New returns a logger writing JSON records to stderr. When verbose is
// false the logger discards everything.
func New(verbose bool) *Logger {
	if !verbose {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}
	return newWithWriter(os.Stderr)
}

func newWithWriter(w io.Writer) *Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return &Logger{sugar: zap.New(core).Sugar()}
}

// With returns a Logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sugar: l.sugar.With(args...)}
}

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(template string, args ...any) {
	l.sugar.Debugf(template, args...)
}

// Infof logs an info message with printf-style formatting.
func (l *Logger) Infof(template string, args ...any) {
	l.sugar.Infof(template, args...)
}

// Warnf logs a warning message with printf-style formatting.
func (l *Logger) Warnf(template string, args ...any) {
	l.sugar.Warnf(template, args...)
}

// Errorf logs an error message with printf-style formatting.
func (l *Logger) Errorf(template string, args ...any) {
	l.sugar.Errorf(template, args...)
}
