package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type implLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a console Logger writing to stdout at the given level.
func New(level string) Logger {
	return NewWithFormat(level, "text")
}

// NewWithFormat creates a Logger using the console ("text") or JSON encoder.
func NewWithFormat(level, format string) Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if strings.EqualFold(format, "json") {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), parseLevel(level))
	return &implLogger{sugar: zap.New(core).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &implLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *implLogger) Sync() error {
	if err := l.sugar.Sync(); err != nil && !strings.Contains(err.Error(), "inappropriate ioctl") && !strings.Contains(err.Error(), "invalid argument") {
		return err
	}
	return nil
}
