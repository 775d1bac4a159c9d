package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("ERROR", "text", &buf)

	logger.Warn("skipped")
	assert.Empty(t, buf.String())

	logger.Error("kept", "calculation", "annuity_payment")
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "calculation=annuity_payment")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", "json", &buf)

	logger.Debug("calculated", "periods", 24)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "calculated", entry["msg"])
	assert.Equal(t, float64(24), entry["periods"])
}

func TestNewUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New("chatty", "text", &buf)

	logger.Info("skipped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
