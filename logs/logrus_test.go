package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusInfoWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.InfoLevel,
		Output: &buf,
		Format: "json",
	})

	ctx := WithTraceID(context.Background(), 42)
	logger.Info(ctx, "insert", MapFields{"value": "Google"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "insert", entry["msg"])
	assert.Equal(t, "Google", entry["value"])
	assert.Equal(t, float64(42), entry["trace_id"])
}

func TestLogrusDebugFilteredByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.InfoLevel,
		Output: &buf,
	})

	logger.Debug(context.Background(), "ignored", MapFields{"a": 1})
	assert.Equal(t, 0, buf.Len())
}

func TestGetTraceIDMissing(t *testing.T) {
	assert.Equal(t, int64(0), GetTraceID(context.Background()))
}
