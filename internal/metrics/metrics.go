package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics счетчики расчетов на собственном реестре. CLI живет доли секунды,
// поэтому значения не отдаются по HTTP, а сбрасываются в textfile для
// node_exporter.
type Metrics struct {
	Registry *prometheus.Registry

	// Calculations счетчик выполненных расчетов
	Calculations *prometheus.CounterVec

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors *prometheus.CounterVec

	// ScheduleMonths распределение длины рассчитанных графиков
	ScheduleMonths prometheus.Histogram
}

// New создает набор метрик на новом реестре
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditcalc_calculations_total",
				Help: "Number of loan calculations by kind and status",
			},
			[]string{"calculation", "loan_type", "status"},
		),
		CalculationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditcalc_calculation_errors_total",
				Help: "Number of failed loan calculations by error type",
			},
			[]string{"calculation", "error_type"},
		),
		ScheduleMonths: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "creditcalc_schedule_months",
				Help:    "Loan term in months of successful calculations",
				Buckets: []float64{6, 12, 24, 60, 120, 240, 360, 600},
			},
		),
	}
}

// WriteTextfile сохраняет текущие значения в формате textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
