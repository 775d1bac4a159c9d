package calculations

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComputeOverpayment возвращает переплату periods·payment − principal.
// Сумма считается в десятичной арифметике, чтобы дробные входные значения
// не давали ошибок округления float64.
func ComputeOverpayment(principal float64, periods int, payment float64) (int64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	total := decimal.NewFromFloat(payment).Mul(decimal.NewFromInt(int64(periods)))
	return overpayment(total, principal)
}

// DifferentiatedOverpayment возвращает сумму платежей графика за вычетом
// суммы кредита
func DifferentiatedOverpayment(principal float64, payments []int64) (int64, error) {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(decimal.NewFromInt(p))
	}
	return overpayment(total, principal)
}

func overpayment(totalPaid decimal.Decimal, principal float64) (int64, error) {
	over := totalPaid.Sub(decimal.NewFromFloat(principal))
	if over.IsNegative() {
		return 0, fmt.Errorf("%w: paid %s, principal %s",
			ErrNegativeOverpayment, totalPaid.String(), decimal.NewFromFloat(principal).String())
	}
	return over.Ceil().IntPart(), nil
}
