package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/creditcalc-go/internal/config"
	"github.com/cloud-ru/creditcalc-go/internal/logging"
)

func TestInitTracingWithoutEndpoint(t *testing.T) {
	var logs bytes.Buffer
	cfg := &config.Config{OTELServiceName: "creditcalc-test"}

	tracer, shutdown, err := InitTracing(context.Background(), cfg, logging.New("DEBUG", "text", &logs))
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "annuity_payment")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, logs.String(), "without exporter")
}
