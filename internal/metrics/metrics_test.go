package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsAreIsolated(t *testing.T) {
	first := New()
	second := New()

	first.Calculations.WithLabelValues("annuity_payment", "annuity", "success").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.Calculations.WithLabelValues("annuity_payment", "annuity", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.Calculations.WithLabelValues("annuity_payment", "annuity", "success")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Calculations.WithLabelValues("differentiated_schedule", "diff", "success").Inc()
	m.CalculationErrors.WithLabelValues("annuity_periods", "payment_too_small").Inc()
	m.ScheduleMonths.Observe(24)

	path := filepath.Join(t.TempDir(), "creditcalc.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `creditcalc_calculations_total{calculation="differentiated_schedule",loan_type="diff",status="success"} 1`)
	assert.Contains(t, text, `creditcalc_calculation_errors_total{calculation="annuity_periods",error_type="payment_too_small"} 1`)
	assert.Contains(t, text, "creditcalc_schedule_months_count 1")
}
