package calculations

import (
	"fmt"
	"math"
)

// MonthlyRate переводит годовую ставку в процентах в месячную долю
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 1200
}

// AmortizationCoefficient возвращает коэффициент аннуитета
// r·(1+r)^n / ((1+r)^n − 1) для n месяцев.
//
// Нулевая ставка не обрабатывается как частный случай: знаменатель
// вырождается, и вызывающий код получает ErrZeroInterest.
func AmortizationCoefficient(periods int, annualRatePercent float64) (float64, error) {
	if periods <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPeriods, periods)
	}
	if annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeRate, annualRatePercent)
	}

	r := MonthlyRate(annualRatePercent)

	// Эквивалентная форма r / (1 − (1+r)^−n) не переполняется на длинных сроках
	denominator := 1.0 - math.Pow(1.0+r, float64(-periods))
	if r == 0 || denominator == 0 {
		return 0, ErrZeroInterest
	}

	return r / denominator, nil
}
