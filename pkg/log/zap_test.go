package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, enc := range []string{EncodingJSON, EncodingConsole} {
		l := Init(ZapConfig{Level: "error", Mode: ModeProduction, Encoding: enc})
		ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "u-1")
		assert.NotPanics(t, func() {
			l.Debugf(ctx, "hidden %d", 1)
			l.Info(ctx, "hidden")
		})
	}
}
