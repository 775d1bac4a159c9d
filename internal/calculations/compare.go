package calculations

// CompareLoans сравнивает аннуитетный и дифференцированный кредиты
func CompareLoans(principal, annualRatePercent float64, months int) (*ComparisonResult, error) {
	// Рассчитываем оба типа кредитов
	annuity, err := AnnuityPayment(principal, months, annualRatePercent)
	if err != nil {
		return nil, err
	}

	differential, err := DifferentialSchedule(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	first, last := firstLast(differential.Payments)

	result := &ComparisonResult{
		Principal:                principal,
		AnnualRatePercent:        annualRatePercent,
		Months:                   months,
		AnnuityPayment:           annuity.Payment,
		AnnuityOverpayment:       annuity.Overpayment,
		DifferentialFirstPayment: first,
		DifferentialLastPayment:  last,
		DifferentialOverpayment:  differential.Overpayment,
	}

	// Определяем, какой кредит выгоднее
	diff := annuity.Overpayment - differential.Overpayment
	switch {
	case diff > 0:
		result.Cheaper = LoanTypeDifferentiated
		result.Savings = diff
	case diff < 0:
		result.Cheaper = LoanTypeAnnuity
		result.Savings = -diff
	}

	return result, nil
}
