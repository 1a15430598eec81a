package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	defer Setup("info", nil)

	levels := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for name, expected := range levels {
		Setup(name, &bytes.Buffer{})
		assert.Equal(t, expected, logrus.GetLevel(), name)
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	WithContext(ctx).
		WithField("tax_id", "27865757000102").
		WithError(errors.New("boom")).
		Info("foundation created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "27865757000102", entry["tax_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "foundation created", entry["msg"])
}

func TestWithContextWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	WithContext(context.Background()).WithFields(map[string]interface{}{"op": "list"}).Info("ok")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasID := entry["request_id"]
	assert.False(t, hasID)
	assert.Equal(t, "list", entry["op"])
}
