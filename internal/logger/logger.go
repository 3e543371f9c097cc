// Package logger provides verbose logging for the kmlpser CLI and servers.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users understand the parse pipeline.
// Errors are always printed.
//
// Output goes through zap. The default text format writes
// "[LEVEL] message" lines; SetFormat("json") switches to zap's JSON
// encoder for log collectors.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by SetFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	format            = FormatText
	level             = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	base              = build()
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.ErrorLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// SetFormat selects the text or json encoder. Unknown values mean text.
func SetFormat(f string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.EqualFold(f, FormatJSON) {
		format = FormatJSON
	} else {
		format = FormatText
	}
	base = build()
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// build must be called with mu held for writing.
func build() *zap.Logger {
	var enc zapcore.Encoder
	if format == FormatJSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey:       "msg",
			LevelKey:         "level",
			EncodeLevel:      bracketLevel,
			ConsoleSeparator: " ",
			LineEnding:       zapcore.DefaultLineEnding,
		})
	}
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(output)), level))
}

func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	L().Debug(fmt.Sprintf(format, args...))
}

// Debugw prints a message with key/value pairs if verbose mode is enabled.
func Debugw(msg string, keysAndValues ...any) {
	L().Sugar().Debugw(msg, keysAndValues...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose && format == FormatText {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	L().Info(fmt.Sprintf(format, args...))
}

// Infow prints a message with key/value pairs if verbose mode is enabled.
func Infow(msg string, keysAndValues ...any) {
	L().Sugar().Infow(msg, keysAndValues...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	L().Warn(fmt.Sprintf(format, args...))
}

// Error prints an error message. Errors are printed even when not verbose.
func Error(format string, args ...any) {
	L().Error(fmt.Sprintf(format, args...))
}
