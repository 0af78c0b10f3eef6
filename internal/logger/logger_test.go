package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() { Setup("info") })

	ctx := WithRequestID(context.Background(), "req-123")
	WithContext(ctx).WithField("team", "Alpha").Info("refreshed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "Alpha", entry["team"])
	assert.Equal(t, "refreshed", entry["msg"])
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.NotContains(t, WithContext(context.Background()).Data, "request_id")
}

func TestSetup_Levels(t *testing.T) {
	t.Cleanup(func() { Setup("info") })

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
