// Package logging builds the structured loggers used across atpoint.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the log encoding.
type Format string

// Log formats.
const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string

	// Format is console or json.
	Format Format

	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
		Output: os.Stderr,
	}
}

// ParseLevel parses a level name (case-insensitive). "warning" is accepted
// as an alias for warn.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatConsole:
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatConsole, fmt.Errorf("logging: unknown format %q", s)
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(cfg.Output), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

// WithComponent returns a child logger with the component field set.
// A nil logger yields a no-op logger.
func WithComponent(l *zap.Logger, component string) *zap.Logger {
	if l == nil {
		return Nop()
	}
	return l.With(zap.String("component", component))
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
