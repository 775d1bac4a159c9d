package calculations

import (
	"fmt"
	"math"

	"github.com/cloud-ru/creditcalc-go/pkg/utils"
)

// ComputePeriods рассчитывает, за сколько месяцев фиксированный платеж
// погасит кредит. Неполный месяц считается целым.
func ComputePeriods(principal, payment, annualRatePercent float64) (int, error) {
	if annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeRate, annualRatePercent)
	}
	if principal <= 0 || payment <= 0 {
		return 0, fmt.Errorf("%w: principal=%v payment=%v", ErrInvalidAmount, principal, payment)
	}

	r := MonthlyRate(annualRatePercent)
	if r == 0 || 1.0+r == 1.0 {
		return 0, ErrZeroInterest
	}

	interest := r * principal
	if payment <= interest {
		return 0, fmt.Errorf("%w: payment %v, monthly interest %v", ErrPaymentTooSmall, payment, interest)
	}

	n := math.Log(payment/(payment-interest)) / math.Log(1.0+r)
	if !utils.IsFinite(n) || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: periods=%v", ErrNumericOverflow, n)
	}

	periods := int(math.Ceil(n))
	if periods < 1 {
		// Платеж настолько больше процентов, что log(x) схлопнулся в ноль
		periods = 1
	}
	return periods, nil
}

// ComputePrincipal рассчитывает сумму кредита по платежу и сроку,
// округляя вверх до целой единицы.
func ComputePrincipal(periods int, payment, annualRatePercent float64) (int64, error) {
	if payment < 0 {
		return 0, fmt.Errorf("%w: payment=%v", ErrInvalidAmount, payment)
	}
	coeff, err := AmortizationCoefficient(periods, annualRatePercent)
	if err != nil {
		return 0, err
	}

	principal := payment / coeff
	if !utils.FitsInt64(principal) {
		return 0, fmt.Errorf("%w: principal=%v", ErrNumericOverflow, principal)
	}
	return utils.CeilUnits(principal), nil
}

// ComputePayment рассчитывает ежемесячный аннуитетный платеж,
// округляя вверх до целой единицы.
func ComputePayment(principal float64, periods int, annualRatePercent float64) (int64, error) {
	if principal < 0 {
		return 0, fmt.Errorf("%w: principal=%v", ErrInvalidAmount, principal)
	}
	coeff, err := AmortizationCoefficient(periods, annualRatePercent)
	if err != nil {
		return 0, err
	}

	payment := principal * coeff
	if !utils.FitsInt64(payment) {
		return 0, fmt.Errorf("%w: payment=%v", ErrNumericOverflow, payment)
	}
	return utils.CeilUnits(payment), nil
}

// AnnuityPeriods рассчитывает срок и переплату при известных сумме и платеже
func AnnuityPeriods(principal, payment, annualRatePercent float64) (*PeriodsResult, error) {
	periods, err := ComputePeriods(principal, payment, annualRatePercent)
	if err != nil {
		return nil, err
	}
	overpayment, err := ComputeOverpayment(principal, periods, payment)
	if err != nil {
		return nil, err
	}
	return &PeriodsResult{Periods: periods, Overpayment: overpayment}, nil
}

// AnnuityPayment рассчитывает платеж и переплату при известных сумме и сроке
func AnnuityPayment(principal float64, periods int, annualRatePercent float64) (*PaymentResult, error) {
	payment, err := ComputePayment(principal, periods, annualRatePercent)
	if err != nil {
		return nil, err
	}
	overpayment, err := ComputeOverpayment(principal, periods, float64(payment))
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Payment: payment, Overpayment: overpayment}, nil
}

// AnnuityPrincipal рассчитывает сумму кредита и переплату при известных
// платеже и сроке
func AnnuityPrincipal(periods int, payment, annualRatePercent float64) (*PrincipalResult, error) {
	principal, err := ComputePrincipal(periods, payment, annualRatePercent)
	if err != nil {
		return nil, err
	}
	overpayment, err := ComputeOverpayment(float64(principal), periods, payment)
	if err != nil {
		return nil, err
	}
	return &PrincipalResult{Principal: principal, Overpayment: overpayment}, nil
}
