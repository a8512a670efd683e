package xlog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xcontainer/lib/infra"
)

func newMemLogger(t *testing.T, lvl LogLevel) (XLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(lvl),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
		WithXLoggerConsoleCore(),
		WithXLoggerTimeEncoder(zapcore.ISO8601TimeEncoder),
		WithXLoggerLevelEncoder(zapcore.CapitalLevelEncoder),
	)
	require.NotNil(t, logger)
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	res := make([]map[string]any, 0, 8)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		res = append(res, m)
	}
	return res
}

func TestXLogger_LevelFilter(t *testing.T) {
	logger, buf := newMemLogger(t, LogLevelInfo)
	logger.Debug("dropped")
	logger.Info("kept", zap.Int("size", 3))
	logger.Warn("warned")
	require.NoError(t, logger.Sync())

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	require.Equal(t, "kept", lines[0]["msg"])
	require.Equal(t, "INFO", lines[0]["lvl"])
	require.Equal(t, float64(3), lines[0]["size"])
	require.Equal(t, "WARN", lines[1]["lvl"])
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	logger, buf := newMemLogger(t, LogLevelDebug)
	logger.Debug("first")
	logger.IncreaseLogLevel(zapcore.ErrorLevel)
	logger.Info("dropped")
	logger.Logf(zapcore.ErrorLevel, "value %d", 42)
	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	require.Equal(t, "value 42", lines[1]["msg"])
}

func TestXLogger_ErrorStack(t *testing.T) {
	logger, buf := newMemLogger(t, LogLevelDebug)
	es := infra.NewErrorStack("broken")
	logger.ErrorStack(infra.WrapErrorStackWithMessage(es, "outer"), "stack")
	logger.Error(es, "plain")
	logger.Named("tree").Warn("named")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 3)
	require.Equal(t, "outer: broken", lines[0]["error"])
	require.NotEmpty(t, lines[0]["errorStack"])
	require.Equal(t, "broken", lines[1]["error"])
	require.Equal(t, "tree", lines[2]["component"])
}

func TestXLogger_Options(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(_writerMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriteSyncer(nil))
	})
	require.Equal(t, zapcore.WarnLevel, getLogLevelOrDefault("warn"))
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault(" "))
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())

	nop := NewNopXLogger()
	nop.Info("nothing")
	nop.ErrorStack(infra.NewErrorStack("x"), "nothing")
	require.NoError(t, nop.Sync())
}
