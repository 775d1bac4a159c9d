package calculations

// LoanType схема погашения кредита
type LoanType string

const (
	LoanTypeAnnuity        LoanType = "annuity"
	LoanTypeDifferentiated LoanType = "diff"
)

// ParseLoanType возвращает схему погашения по ее имени в CLI
func ParseLoanType(name string) (LoanType, bool) {
	switch LoanType(name) {
	case LoanTypeAnnuity, LoanTypeDifferentiated:
		return LoanType(name), true
	}
	return "", false
}

// PeriodsResult результат расчета срока аннуитетного кредита
type PeriodsResult struct {
	Periods     int   `json:"periods"`
	Overpayment int64 `json:"overpayment"`
}

// PaymentResult результат расчета ежемесячного аннуитетного платежа
type PaymentResult struct {
	Payment     int64 `json:"payment"`
	Overpayment int64 `json:"overpayment"`
}

// PrincipalResult результат расчета суммы аннуитетного кредита
type PrincipalResult struct {
	Principal   int64 `json:"principal"`
	Overpayment int64 `json:"overpayment"`
}

// DifferentiatedResult график платежей дифференцированного кредита.
// Payments[i] соответствует месяцу i+1.
type DifferentiatedResult struct {
	Payments    []int64 `json:"payments"`
	Overpayment int64   `json:"overpayment"`
}

// ComparisonResult сравнение аннуитетной и дифференцированной схем
type ComparisonResult struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Months            int     `json:"months"`

	AnnuityPayment     int64 `json:"annuity_payment"`
	AnnuityOverpayment int64 `json:"annuity_overpayment"`

	DifferentialFirstPayment int64 `json:"differential_first_payment"`
	DifferentialLastPayment  int64 `json:"differential_last_payment"`
	DifferentialOverpayment  int64 `json:"differential_overpayment"`

	// Cheaper пуст, если обе схемы дают одинаковую переплату
	Cheaper LoanType `json:"cheaper,omitempty"`
	Savings int64    `json:"savings"`
}
