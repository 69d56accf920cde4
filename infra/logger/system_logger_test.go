package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		minLevel LogLevel
		level    LogLevel
		want     bool
	}{
		{"debug at debug", LevelDebug, LevelDebug, true},
		{"debug at info", LevelInfo, LevelDebug, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"warn at error", LevelError, LevelWarn, false},
		{"fatal at error", LevelError, LevelFatal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sl := NewSystemLogger(nil, SystemLoggerConfig{MinLevel: tt.minLevel})
			assert.Equal(t, tt.want, sl.shouldLog(tt.level))
		})
	}
}

func TestExtractComponent(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"/home/dev/netopia/infra/middle/logging.go", "infra/middle"},
		{"/home/dev/netopia/handler/payment.go", "handler"},
		{"/somewhere/else/pkg/file.go", "pkg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractComponent(tt.file))
	}
}

func TestContextLogger(t *testing.T) {
	sl := NewSystemLogger(nil, SystemLoggerConfig{MinLevel: LevelInfo})

	cl := sl.WithContext(LogContext{RequestID: "req-1"}).
		AddField("endpoint", "/v1/payment/start").
		SetRequestID("req-2")

	assert.Equal(t, "req-2", cl.context.RequestID)
	assert.Equal(t, "/v1/payment/start", cl.context.Fields["endpoint"])
}

func TestGetGlobalLoggerFallback(t *testing.T) {
	globalLogger = nil
	sl := GetGlobalLogger()

	assert.NotNil(t, sl)
	assert.True(t, sl.enableConsole)
	assert.False(t, sl.enableOpenSearch)
}
