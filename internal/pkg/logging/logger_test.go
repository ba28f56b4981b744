//go:build unit

package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Message: "Host found",
		Data: logrus.Fields{
			FieldComponent: "sweep",
			FieldAddress:   "192.168.1.3",
			"hostname":     "printer.local",
			"completed":    3,
		},
	}

	t.Run("WithoutTime", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[INFO][sweep][192.168.1.3] Host found (completed=3, hostname=printer.local)\n", string(out))
	})

	t.Run("WithTime", func(t *testing.T) {
		entry.Buffer = nil
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.Contains(t, string(out), "[03:04:05][INFO][sweep]")
	})
}

func TestInitLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer

	t.Run("ValidConfig", func(t *testing.T) {
		InitLoggerWithOutput(LogConfig{Level: "debug", Format: "simple"}, &buf)
		assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
		assert.IsType(t, &CompactFormatter{}, Logger.Formatter)
	})

	t.Run("InvalidLevelFallsBackToInfo", func(t *testing.T) {
		buf.Reset()
		InitLoggerWithOutput(LogConfig{Level: "loud", Format: "json"}, &buf)
		assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, Logger.Formatter)
		assert.Contains(t, buf.String(), "Invalid log level")
	})

	t.Run("InvalidFormatFallsBackToText", func(t *testing.T) {
		buf.Reset()
		InitLoggerWithOutput(LogConfig{Level: "info", Format: "xml"}, &buf)
		assert.IsType(t, &logrus.TextFormatter{}, Logger.Formatter)
		assert.Contains(t, buf.String(), "Invalid log format")
	})

	t.Run("Helpers", func(t *testing.T) {
		buf.Reset()
		InitLoggerWithOutput(LogConfig{Level: "info", Format: "simple"}, &buf)
		WithComponentAndAddress("probe", "10.0.0.1").Info("checking")
		assert.Equal(t, "[INFO][probe][10.0.0.1] checking\n", buf.String())
	})
}
