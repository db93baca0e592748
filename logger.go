package ifcgeom

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the four-level logging sink the core reports through. It
// never touches a file or the console directly; callers choose the
// transport.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// NopLogger discards every message; useful for tests and callers that do
// not care about diagnostics.
type NopLogger struct{}

func (NopLogger) Error(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}

// ZapLogger adapts a *zap.Logger (sugared) to the Logger interface.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a ZapLogger writing to w at the given zapcore
// level, console-encoded. For rotating file output, wrap a
// *lumberjack.Logger with zapcore.AddSync, as NewRotatingFileLogger does.
func NewZapLogger(w zapcore.WriteSyncer, level zapcore.Level) *ZapLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})
	core := zapcore.NewCore(encoder, w, level)
	return &ZapLogger{sugar: zap.New(core, zap.AddCaller()).Sugar()}
}

// NewRotatingFileLogger is a convenience constructor pairing NewZapLogger
// with a lumberjack rotating writer.
func NewRotatingFileLogger(path string, level zapcore.Level) *ZapLogger {
	return NewZapLogger(zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}), level)
}

func (l *ZapLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }
func (l *ZapLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *ZapLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *ZapLogger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error { return l.sugar.Sync() }
