package calculations

import "errors"

// Доменные ошибки расчетов. Возвращаются обернутыми через fmt.Errorf,
// проверять следует через errors.Is.
var (
	ErrZeroInterest        = errors.New("interest rate is zero, annuity coefficient is undefined")
	ErrInvalidPeriods      = errors.New("number of periods must be at least 1")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrNegativeRate        = errors.New("interest rate must not be negative")
	ErrPaymentTooSmall     = errors.New("payment does not cover the monthly interest")
	ErrNegativeOverpayment = errors.New("total paid is less than the principal")
	ErrNumericOverflow     = errors.New("result is not a finite number")
)
