package logger

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cardfetch/pkg/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	return &zerologLogger{zl: zerolog.New(buf).Level(zerolog.DebugLevel)}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{name: "info level", cfg: &config.LoggingConfig{Level: "info"}},
		{name: "debug level", cfg: &config.LoggingConfig{Level: "debug"}},
		{name: "invalid level", cfg: &config.LoggingConfig{Level: "invalid"}, wantErr: true},
		{
			name: "file output",
			cfg: &config.LoggingConfig{
				Level:   "info",
				File:    filepath.Join(t.TempDir(), "logs", "cardfetch.log"),
				MaxSize: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"invalid", zerolog.InfoLevel, true},
		{"trace", zerolog.InfoLevel, true},
		{"", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	for name, logFn := range map[string]func(string){
		"debug": logger.Debug,
		"info":  logger.Info,
		"warn":  logger.Warn,
		"error": logger.Error,
	} {
		buf.Reset()
		logFn(name + " message")
		assert.Contains(t, buf.String(), name+" message")
		assert.Contains(t, buf.String(), `"level":"`+name+`"`)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithFields(map[string]interface{}{
		"string":   "value",
		"int":      42,
		"bool":     true,
		"duration": 500 * time.Millisecond,
	}).WithField("reference", "wildbg.jpg").Info("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"string":"value"`)
	assert.Contains(t, output, `"int":42`)
	assert.Contains(t, output, `"bool":true`)
	assert.Contains(t, output, `"reference":"wildbg.jpg"`)
	assert.Contains(t, output, `"duration":500`)
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newBufferLogger(&buf)
	_ = parent.WithField("child", true)

	parent.Info("parent message")
	assert.NotContains(t, buf.String(), "child")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithError(errors.New("boom")).Error("failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)

	assert.Same(t, logger, logger.WithError(nil))
}

func TestLogRequestLevels(t *testing.T) {
	log := NewTestLogger()

	LogRequest(log, "GET", "https://example.com/", 200, time.Millisecond)
	LogRequest(log, "GET", "https://example.com/missing.jpg", 404, time.Millisecond)
	LogRequest(log, "GET", "https://example.com/broken.jpg", 503, time.Millisecond)

	messages := log.GetMessages()
	require.Len(t, messages, 3)
	assert.Equal(t, "DEBUG", messages[0].Level)
	assert.Equal(t, "WARN", messages[1].Level)
	assert.Equal(t, "ERROR", messages[2].Level)
	assert.Equal(t, 404, messages[1].Fields["status_code"])
}

func TestLogDownload(t *testing.T) {
	log := NewTestLogger()

	LogDownload(log, "wildbg.jpg", true, nil)
	LogDownload(log, "wildgt.jpg", false, nil)
	LogDownload(log, "wildop.jpg", false, errors.New("404"))

	messages := log.GetMessages()
	require.Len(t, messages, 3)
	assert.Equal(t, "Download completed", messages[0].Message)
	assert.Equal(t, "Download skipped", messages[1].Message)
	assert.Equal(t, "ERROR", messages[2].Level)
	assert.EqualError(t, messages[2].Error, "404")
	assert.Equal(t, "wildop.jpg", messages[2].Fields["reference"])
}

func TestTestLoggerSharesCapture(t *testing.T) {
	log := NewTestLogger()
	child := log.WithField("component", "fetcher")
	child.InfoWithFields("hello", map[string]interface{}{"n": 1})

	assert.True(t, log.HasMessage("hello"))
	assert.False(t, log.HasError())
	msg := log.GetMessages()[0]
	assert.Equal(t, "fetcher", msg.Fields["component"])
	assert.Equal(t, 1, msg.Fields["n"])

	log.Clear()
	assert.Empty(t, log.GetMessages())
}

func TestGlobalLogger(t *testing.T) {
	prev := GetLogger()
	defer func() { globalLogger = prev }()

	require.NoError(t, Initialize(&config.LoggingConfig{Level: "disabled"}))
	assert.NotNil(t, GetLogger())
	assert.Equal(t, zerolog.Disabled, GetLogger().GetZerolog().GetLevel())

	assert.Error(t, Initialize(&config.LoggingConfig{Level: "nope"}))
}
