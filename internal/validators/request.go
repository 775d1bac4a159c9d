package validators

import (
	"fmt"

	"github.com/cloud-ru/creditcalc-go/internal/calculations"
	"github.com/cloud-ru/creditcalc-go/internal/config"
)

// Params значения флагов командной строки. nil означает, что флаг не передан.
type Params struct {
	Type      string
	Principal *float64
	Payment   *float64
	Periods   *int
	Interest  *float64
}

// Request допустимая комбинация параметров. Реализуется только типами
// этого пакета, по одному на каждую комбинацию.
type Request interface {
	LoanType() calculations.LoanType
	isRequest()
}

// AnnuityPeriodsRequest: известны сумма и платеж, ищем срок
type AnnuityPeriodsRequest struct {
	Principal float64
	Payment   float64
	Interest  float64
}

// AnnuityPaymentRequest: известны сумма и срок, ищем платеж
type AnnuityPaymentRequest struct {
	Principal float64
	Periods   int
	Interest  float64
}

// AnnuityPrincipalRequest: известны платеж и срок, ищем сумму
type AnnuityPrincipalRequest struct {
	Payment  float64
	Periods  int
	Interest float64
}

// DifferentiatedRequest: график дифференцированного кредита
type DifferentiatedRequest struct {
	Principal float64
	Periods   int
	Interest  float64
}

func (AnnuityPeriodsRequest) LoanType() calculations.LoanType   { return calculations.LoanTypeAnnuity }
func (AnnuityPaymentRequest) LoanType() calculations.LoanType   { return calculations.LoanTypeAnnuity }
func (AnnuityPrincipalRequest) LoanType() calculations.LoanType { return calculations.LoanTypeAnnuity }
func (DifferentiatedRequest) LoanType() calculations.LoanType {
	return calculations.LoanTypeDifferentiated
}

func (AnnuityPeriodsRequest) isRequest()   {}
func (AnnuityPaymentRequest) isRequest()   {}
func (AnnuityPrincipalRequest) isRequest() {}
func (DifferentiatedRequest) isRequest()   {}

// ParseRequest превращает набор флагов в один из вариантов Request.
// Любая другая комбинация дает ErrIncorrectParameters.
func ParseRequest(cfg *config.Config, p Params) (Request, error) {
	if p.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrIncorrectParameters)
	}
	loanType, ok := calculations.ParseLoanType(p.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrIncorrectParameters, p.Type)
	}
	if p.Interest == nil {
		return nil, fmt.Errorf("%w: interest is required", ErrIncorrectParameters)
	}

	if err := checkSupplied(cfg, p); err != nil {
		return nil, err
	}

	interest := *p.Interest
	hasPrincipal, hasPayment, hasPeriods := p.Principal != nil, p.Payment != nil, p.Periods != nil

	if loanType == calculations.LoanTypeDifferentiated {
		if hasPayment {
			return nil, fmt.Errorf("%w: payment cannot be used with type %s", ErrIncorrectParameters, loanType)
		}
		if !hasPrincipal || !hasPeriods {
			return nil, fmt.Errorf("%w: type %s needs principal and periods", ErrIncorrectParameters, loanType)
		}
		return DifferentiatedRequest{Principal: *p.Principal, Periods: *p.Periods, Interest: interest}, nil
	}

	switch {
	case hasPrincipal && hasPayment && !hasPeriods:
		return AnnuityPeriodsRequest{Principal: *p.Principal, Payment: *p.Payment, Interest: interest}, nil
	case hasPrincipal && hasPeriods && !hasPayment:
		return AnnuityPaymentRequest{Principal: *p.Principal, Periods: *p.Periods, Interest: interest}, nil
	case hasPayment && hasPeriods && !hasPrincipal:
		return AnnuityPrincipalRequest{Payment: *p.Payment, Periods: *p.Periods, Interest: interest}, nil
	}

	return nil, fmt.Errorf("%w: type %s needs exactly two of principal, payment and periods",
		ErrIncorrectParameters, loanType)
}

func checkSupplied(cfg *config.Config, p Params) error {
	if err := CheckRate(cfg, *p.Interest); err != nil {
		return err
	}
	if p.Principal != nil {
		if err := CheckPrincipal(cfg, *p.Principal); err != nil {
			return err
		}
	}
	if p.Payment != nil {
		if err := CheckPayment(cfg, *p.Payment); err != nil {
			return err
		}
	}
	if p.Periods != nil {
		if err := CheckMonths(cfg, *p.Periods); err != nil {
			return err
		}
	}
	return nil
}
