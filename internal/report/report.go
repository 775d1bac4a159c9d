package report

import (
	"fmt"
	"io"

	"github.com/cloud-ru/creditcalc-go/internal/calculations"
)

// IncorrectParameters строка, которую CLI печатает при ошибке параметров
const IncorrectParameters = "Incorrect Parameters"

// Write печатает результат расчета построчно, последней строкой идет переплата
func Write(w io.Writer, result interface{}) error {
	var (
		lines       []string
		overpayment int64
	)

	switch r := result.(type) {
	case *calculations.PeriodsResult:
		lines = append(lines, calculations.FormatRemainingPeriods(r.Periods))
		overpayment = r.Overpayment
	case *calculations.PaymentResult:
		lines = append(lines, fmt.Sprintf("Your monthly payment = %d!", r.Payment))
		overpayment = r.Overpayment
	case *calculations.PrincipalResult:
		lines = append(lines, fmt.Sprintf("Your loan principal = %d!", r.Principal))
		overpayment = r.Overpayment
	case *calculations.DifferentiatedResult:
		for i, payment := range r.Payments {
			lines = append(lines, fmt.Sprintf("Month %d: payment is %d", i+1, payment))
		}
		overpayment = r.Overpayment
	default:
		return fmt.Errorf("unsupported result type %T", result)
	}

	lines = append(lines, fmt.Sprintf("Overpayment = %d", overpayment))
	return writeLines(w, lines)
}

// WriteComparison печатает сравнение двух схем погашения
func WriteComparison(w io.Writer, r *calculations.ComparisonResult) error {
	lines := []string{
		fmt.Sprintf("Annuity: monthly payment = %d, overpayment = %d", r.AnnuityPayment, r.AnnuityOverpayment),
		fmt.Sprintf("Differentiated: first payment = %d, last payment = %d, overpayment = %d",
			r.DifferentialFirstPayment, r.DifferentialLastPayment, r.DifferentialOverpayment),
	}

	switch r.Cheaper {
	case calculations.LoanTypeAnnuity:
		lines = append(lines, fmt.Sprintf("Annuity is cheaper by %d", r.Savings))
	case calculations.LoanTypeDifferentiated:
		lines = append(lines, fmt.Sprintf("Differentiated is cheaper by %d", r.Savings))
	default:
		lines = append(lines, "Both schemes cost the same")
	}

	return writeLines(w, lines)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
