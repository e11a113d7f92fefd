package logging

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the Logger interface. Children made
// with WithFields share one atomic level.
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a JSON logger writing to out
func NewZapLogger(out zapcore.WriteSyncer, level Level) *ZapLogger {
	atom := zap.NewAtomicLevelAt(toZapLevel(level))
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), out, atom)
	return &ZapLogger{logger: zap.New(core), level: atom}
}

// NewZapProduction builds a logger from zap's production config, writing
// JSON to stderr
func NewZapProduction(level Level) (*ZapLogger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(toZapLevel(level))
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{logger: logger, level: config.Level}, nil
}

// Sync flushes buffered entries
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	z.logger.Debug(msg, toZapFields(nil, fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	z.logger.Info(msg, toZapFields(nil, fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	z.logger.Warn(msg, toZapFields(nil, fields)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	z.logger.Error(msg, toZapFields(err, fields)...)
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	z.logger.Fatal(msg, toZapFields(err, fields)...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{
		logger: z.logger.With(toZapFields(nil, []Fields{fields})...),
		level:  z.level,
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

func (z *ZapLogger) SetLevel(level Level) {
	z.level.SetLevel(toZapLevel(level))
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(err error, fields []Fields) []zap.Field {
	merged := merge(nil, fields...)
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys)+1)
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, k := range keys {
		out = append(out, zap.Any(k, merged[k]))
	}
	return out
}
