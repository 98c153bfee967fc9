package hbetl

import "go.uber.org/zap"

// Logger is the narrow diagnostic-logging surface the transpiler uses.
// It exists so callers can hand in a *zap.Logger (via ZapLogger) without
// this package importing zap's full API into every call site (mirrors
// itsatony-go-prompty's WithLogger option defaulting to a no-op logger
// rather than requiring every caller to configure one).
type Logger interface {
	Debug(msg string, fields ...zap.Field)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}

// ZapLogger adapts a *zap.Logger to Logger. A nil *zap.Logger behaves
// like a no-op logger rather than panicking.
type ZapLogger struct {
	L *zap.Logger
}

func (z ZapLogger) Debug(msg string, fields ...zap.Field) {
	if z.L == nil {
		return
	}
	z.L.Debug(msg, fields...)
}

// NewZapLogger wraps l as a Logger, defaulting to zap's no-op logger
// when l is nil.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{L: l}
}
