package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/creditcalc-go/internal/config"
	"github.com/cloud-ru/creditcalc-go/pkg/utils"
)

// ErrIncorrectParameters возвращается для любой недопустимой комбинации
// или значения параметров. Расчет в этом случае не выполняется.
var ErrIncorrectParameters = errors.New("incorrect parameters")

// ValidateNumber проверяет, что число конечно и лежит в допустимом диапазоне
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%w: %s is not a finite number", ErrIncorrectParameters, name)
	}
	if value < minInclusive {
		return fmt.Errorf("%w: %s must be >= %g", ErrIncorrectParameters, name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%w: %s is too large (> %g)", ErrIncorrectParameters, name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s must be in range [%d; %d]", ErrIncorrectParameters, name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidateNumber("principal", principal, 0.0, cfg.MaxPrincipal)
}

// CheckPayment проверяет ежемесячный платеж
func CheckPayment(cfg *config.Config, payment float64) error {
	return ValidateNumber("payment", payment, 0.0, cfg.MaxPayment)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumber("interest", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("periods", months, 1, cfg.MaxMonths)
}
