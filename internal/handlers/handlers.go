package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/creditcalc-go/internal/calculations"
	"github.com/cloud-ru/creditcalc-go/internal/config"
	"github.com/cloud-ru/creditcalc-go/internal/metrics"
	"github.com/cloud-ru/creditcalc-go/internal/validators"
)

// ErrCalculationFailed оборачивает доменные ошибки движка, чтобы CLI мог
// отличить их от ошибок параметров
var ErrCalculationFailed = errors.New("calculation failed")

// Handler выполняет расчеты, добавляя к ним спаны, метрики и логи
type Handler struct {
	cfg     *config.Config
	tracer  trace.Tracer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New создает обработчик расчетов
func New(cfg *config.Config, tracer trace.Tracer, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, tracer: tracer, metrics: m, logger: logger}
}

// Calculate выполняет расчет для одного из вариантов запроса. Возвращает
// *calculations.PeriodsResult, *PaymentResult, *PrincipalResult или
// *DifferentiatedResult.
func (h *Handler) Calculate(ctx context.Context, req validators.Request) (interface{}, error) {
	switch r := req.(type) {
	case validators.AnnuityPeriodsRequest:
		return h.run(ctx, "annuity_periods", r.LoanType(), []attribute.KeyValue{
			attribute.Float64("principal", r.Principal),
			attribute.Float64("payment", r.Payment),
			attribute.Float64("annual_rate_percent", r.Interest),
		}, func() (interface{}, int, error) {
			result, err := calculations.AnnuityPeriods(r.Principal, r.Payment, r.Interest)
			if err != nil {
				return nil, 0, err
			}
			return result, result.Periods, nil
		})

	case validators.AnnuityPaymentRequest:
		return h.run(ctx, "annuity_payment", r.LoanType(), []attribute.KeyValue{
			attribute.Float64("principal", r.Principal),
			attribute.Int("months", r.Periods),
			attribute.Float64("annual_rate_percent", r.Interest),
		}, func() (interface{}, int, error) {
			result, err := calculations.AnnuityPayment(r.Principal, r.Periods, r.Interest)
			if err != nil {
				return nil, 0, err
			}
			return result, r.Periods, nil
		})

	case validators.AnnuityPrincipalRequest:
		return h.run(ctx, "annuity_principal", r.LoanType(), []attribute.KeyValue{
			attribute.Float64("payment", r.Payment),
			attribute.Int("months", r.Periods),
			attribute.Float64("annual_rate_percent", r.Interest),
		}, func() (interface{}, int, error) {
			result, err := calculations.AnnuityPrincipal(r.Periods, r.Payment, r.Interest)
			if err != nil {
				return nil, 0, err
			}
			return result, r.Periods, nil
		})

	case validators.DifferentiatedRequest:
		return h.run(ctx, "differentiated_schedule", r.LoanType(), []attribute.KeyValue{
			attribute.Float64("principal", r.Principal),
			attribute.Int("months", r.Periods),
			attribute.Float64("annual_rate_percent", r.Interest),
		}, func() (interface{}, int, error) {
			result, err := calculations.DifferentialSchedule(r.Principal, r.Interest, r.Periods)
			if err != nil {
				return nil, 0, err
			}
			return result, r.Periods, nil
		})
	}

	return nil, fmt.Errorf("%w: unsupported request %T", validators.ErrIncorrectParameters, req)
}

// Compare сравнивает аннуитетную и дифференцированную схемы
func (h *Handler) Compare(ctx context.Context, principal, annualRatePercent float64, months int) (*calculations.ComparisonResult, error) {
	const calculation = "compare_loan_schedules"

	// Валидация
	for _, err := range []error{
		validators.CheckPrincipal(h.cfg, principal),
		validators.CheckRate(h.cfg, annualRatePercent),
		validators.CheckMonths(h.cfg, months),
	} {
		if err != nil {
			h.metrics.Calculations.WithLabelValues(calculation, "", "validation_error").Inc()
			h.metrics.CalculationErrors.WithLabelValues(calculation, "validation").Inc()
			return nil, err
		}
	}

	result, err := h.run(ctx, calculation, "", []attribute.KeyValue{
		attribute.Float64("principal", principal),
		attribute.Int("months", months),
		attribute.Float64("annual_rate_percent", annualRatePercent),
	}, func() (interface{}, int, error) {
		result, err := calculations.CompareLoans(principal, annualRatePercent, months)
		if err != nil {
			return nil, 0, err
		}
		return result, months, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*calculations.ComparisonResult), nil
}

// run оборачивает расчет спаном, метриками и логированием. calc возвращает
// результат и срок в месяцах для гистограммы.
func (h *Handler) run(ctx context.Context, calculation string, loanType calculations.LoanType,
	attrs []attribute.KeyValue, calc func() (interface{}, int, error)) (interface{}, error) {

	_, span := h.tracer.Start(ctx, calculation)
	defer span.End()

	span.SetAttributes(attrs...)
	span.SetAttributes(attribute.String("loan_type", string(loanType)))

	logger := h.logger.With(slog.String("calculation", calculation))
	logger.Debug("calculation started")

	result, months, err := calc()
	if err != nil {
		errorType := ErrorType(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, errorType)
		span.SetAttributes(attribute.String("error", errorType))
		h.metrics.Calculations.WithLabelValues(calculation, string(loanType), "error").Inc()
		h.metrics.CalculationErrors.WithLabelValues(calculation, errorType).Inc()
		logger.Warn("calculation failed", slog.String("error_type", errorType), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	span.SetAttributes(attribute.Bool("success", true), attribute.Int("result_months", months))
	h.metrics.Calculations.WithLabelValues(calculation, string(loanType), "success").Inc()
	h.metrics.ScheduleMonths.Observe(float64(months))
	logger.Debug("calculation finished", slog.Int("months", months))

	return result, nil
}

// ErrorType возвращает метку метрики для ошибки расчета
func ErrorType(err error) string {
	switch {
	case errors.Is(err, validators.ErrIncorrectParameters):
		return "validation"
	case errors.Is(err, calculations.ErrPaymentTooSmall):
		return "payment_too_small"
	case errors.Is(err, calculations.ErrZeroInterest):
		return "zero_interest"
	case errors.Is(err, calculations.ErrNegativeOverpayment):
		return "negative_overpayment"
	case errors.Is(err, calculations.ErrNumericOverflow):
		return "overflow"
	case errors.Is(err, calculations.ErrInvalidPeriods),
		errors.Is(err, calculations.ErrInvalidAmount),
		errors.Is(err, calculations.ErrNegativeRate):
		return "invalid_input"
	}
	return "calculation"
}
