package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NutshellEngineering/uuid/internal/log"
)

func TestNew_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.WithWriter(&buf))

	logger.Info("Dropped")
	logger.Warn("Kept", "count", 3)

	out := buf.String()
	assert.NotContains(t, out, "Dropped")
	assert.Contains(t, out, "msg=Kept")
	assert.Contains(t, out, "count=3")
}

func TestNew_Options(t *testing.T) {
	type test struct {
		name  string
		opts  []log.Option
		debug bool
		json  bool
	}

	tests := []test{
		{name: "level string", opts: []log.Option{log.WithLevel("debug")}, debug: true},
		{name: "level const", opts: []log.Option{log.WithLevel(slog.LevelDebug)}, debug: true},
		{name: "format string", opts: []log.Option{log.WithFormat("JSON")}, json: true},
		{name: "format const", opts: []log.Option{log.WithFormat(log.FormatJSON)}, json: true},
		{name: "invalid level", opts: []log.Option{log.WithLevel("loud")}},
		{name: "invalid format", opts: []log.Option{log.WithFormat("xml")}},
		{name: "unsupported type", opts: []log.Option{log.WithLevel(42), log.WithFormat(1.5)}},
		{name: "nil writer", opts: []log.Option{log.WithWriter(nil)}},
		{
			name:  "all",
			opts:  []log.Option{log.WithLevel("debug"), log.WithFormat("json"), log.WithAddSource(true)},
			debug: true,
			json:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(append([]log.Option{log.WithWriter(&buf)}, tc.opts...)...)
			require.NotNil(t, logger)

			logger.Debug("Debug record")
			logger.Error("Error record", "error", "boom")

			out := buf.Bytes()
			assert.Equal(t, tc.debug, bytes.Contains(out, []byte("Debug record")))
			require.True(t, bytes.Contains(out, []byte("Error record")))

			if tc.json {
				last := bytes.TrimSpace(out)
				if i := bytes.LastIndexByte(last, '\n'); i >= 0 {
					last = last[i+1:]
				}
				var record map[string]any
				require.NoError(t, json.Unmarshal(last, &record))
				assert.Equal(t, "Error record", record["msg"])
				assert.Equal(t, "boom", record["error"])
			} else {
				assert.Contains(t, string(out), "error=boom")
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := log.Discard()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Error("Dropped", "error", "boom") })
}

func TestParseLevel(t *testing.T) {
	type test struct {
		in      string
		want    slog.Level
		wantErr bool
	}

	tests := []test{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"warn+2", slog.LevelWarn + 2, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := log.ParseLevel(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	type test struct {
		in      string
		want    log.Format
		wantErr bool
	}

	tests := []test{
		{"text", log.FormatText, false},
		{"json", log.FormatJSON, false},
		{"TEXT", log.FormatText, false},
		{"Json", log.FormatJSON, false},
		{"logfmt", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := log.ParseFormat(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "text", log.FormatText.String())
	assert.Equal(t, "json", log.FormatJSON.String())
}
