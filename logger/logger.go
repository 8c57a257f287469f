package logger

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes structured key/value logs. The zero value is not usable;
// build one with New or Nop.
type Logger struct {
	s *zap.SugaredLogger
}

// New builds a logger for the given LOG_MODE. "prod" logs JSON from info up,
// "test" only warnings and errors, anything else is console output at debug.
func New(mode string) (*Logger, error) {
	cfg, level := zap.NewDevelopmentConfig(), zapcore.DebugLevel
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg, level = zap.NewProductionConfig(), zapcore.InfoLevel
	case "test":
		level = zapcore.WarnLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{s: z.Sugar()}, nil
}

func Nop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.s.Desugar().Core().Enabled(level)
}

func (l *Logger) Sync() { _ = l.s.Sync() }

func (l *Logger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l *Logger) Info(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l *Logger) Fatal(msg string, kv ...interface{}) { l.s.Fatalw(msg, kv...) }

// With returns a child logger that adds kv to every entry.
func (l *Logger) With(kv ...interface{}) *Logger {
	return &Logger{s: l.s.With(kv...)}
}

var std atomic.Pointer[Logger]

// L returns the process-wide logger, a no-op one until SetDefault is called.
func L() *Logger {
	if l := std.Load(); l != nil {
		return l
	}
	return Nop()
}

func SetDefault(l *Logger) {
	std.Store(l)
}
