package calculations

import (
	"fmt"

	"github.com/cloud-ru/creditcalc-go/pkg/utils"
)

// DifferentiatedPayments рассчитывает помесячные платежи дифференцированного
// кредита. Основной долг гасится равными долями, проценты начисляются на
// остаток, поэтому платежи не возрастают.
func DifferentiatedPayments(principal float64, periods int, annualRatePercent float64) ([]int64, error) {
	if periods < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	if principal < 0 {
		return nil, fmt.Errorf("%w: principal=%v", ErrInvalidAmount, principal)
	}
	if annualRatePercent < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeRate, annualRatePercent)
	}

	P := principal
	n := float64(periods)
	r := MonthlyRate(annualRatePercent)

	payments := make([]int64, 0, periods)
	for m := 0; m < periods; m++ {
		payment := P/n + r*(P-(P*float64(m))/n)
		if !utils.FitsInt64(payment) {
			return nil, fmt.Errorf("%w: month %d payment=%v", ErrNumericOverflow, m+1, payment)
		}
		payments = append(payments, utils.CeilUnits(payment))
	}

	return payments, nil
}

// DifferentialSchedule рассчитывает график дифференцированного кредита и
// переплату по нему
func DifferentialSchedule(principal, annualRatePercent float64, months int) (*DifferentiatedResult, error) {
	payments, err := DifferentiatedPayments(principal, months, annualRatePercent)
	if err != nil {
		return nil, err
	}

	overpayment, err := DifferentiatedOverpayment(principal, payments)
	if err != nil {
		return nil, err
	}

	return &DifferentiatedResult{
		Payments:    payments,
		Overpayment: overpayment,
	}, nil
}

// firstLast возвращает первый и последний платеж графика
func firstLast(payments []int64) (first, last int64) {
	if len(payments) == 0 {
		return 0, 0
	}
	return payments[0], payments[len(payments)-1]
}
