//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "trace", want: zerolog.TraceLevel},
		{level: " WARN ", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Info().Str("product_code", "R12").Msg("order calculated")
	l.Debug().Msg("dropped below level")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, "R12", entry["product_code"])
	assert.Equal(t, "order calculated", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", true)
	t.Cleanup(func() { Init("info", false) })

	l := Logger()
	l.Warn().Msg("catalog file missing")

	assert.Contains(t, buf.String(), "catalog file missing")
	assert.NotContains(t, buf.String(), `"service"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", false)
	t.Cleanup(func() { Init("info", false) })

	l := WithContext(map[string]interface{}{
		"command":  "calc",
		"quantity": 15,
	})
	l.Debug().Msg("solving")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "calc", entry["command"])
	assert.EqualValues(t, 15, entry["quantity"])
	assert.Equal(t, ServiceName, entry["service"])
}

func TestWithContext_Empty(t *testing.T) {
	Init("info", false)
	assert.NotPanics(t, func() {
		l := WithContext(nil)
		l.Info().Msg("no fields")
	})
}
